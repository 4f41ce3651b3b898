package messages

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		msg  Inbound
		want error
	}{
		{"player id ok", PlayerID{PlayerID: 7}, nil},
		{"player id zero", PlayerID{}, ErrInvalidID},
		{"class ok", PlayerClass{ClassName: "WarriorCell"}, nil},
		{"class empty", PlayerClass{}, ErrMissingClass},
		{"spawn ok", EntitySpawn{EntityID: 7, ClassName: "WarriorCell", X: 10, Y: 10, HP: 100}, nil},
		{"spawn negative hp", EntitySpawn{EntityID: 7, ClassName: "WarriorCell", HP: -1}, ErrInvalidHealth},
		{"spawn nan", EntitySpawn{EntityID: 7, ClassName: "WarriorCell", X: math.NaN()}, ErrInvalidCoordinate},
		{"spawn no class", EntitySpawn{EntityID: 7}, ErrMissingClass},
		{"movement ok", EntityMovement{EntityID: 3, X: 1, Y: 2, DirX: 1}, nil},
		{"movement stopped", EntityMovement{EntityID: 3}, nil},
		{"movement long direction", EntityMovement{EntityID: 3, DirX: 3, DirY: 4}, ErrInvalidDirection},
		{"movement inf", EntityMovement{EntityID: 3, Y: math.Inf(1)}, ErrInvalidCoordinate},
		{"health dead", EntityHealth{EntityID: 3, HP: 0}, nil},
		{"health negative", EntityHealth{EntityID: 3, HP: -5}, ErrInvalidHealth},
		{"despawn zero", EntityDespawn{}, ErrInvalidID},
		{"attack ok", Attack{AttackerID: 1, TargetID: 2, SkillIndex: 1}, nil},
		{"attack no target", Attack{AttackerID: 1}, ErrInvalidID},
		{"attack negative skill", Attack{AttackerID: 1, TargetID: 2, SkillIndex: -1}, ErrInvalidSkill},
		{"fire skill too large", FireTo{EntityID: 1, SkillIndex: MaxSkillIndex + 1}, ErrInvalidSkill},
		{"ping notification ok", PingNotification{PingMs: 120}, nil},
		{"ping notification negative", PingNotification{PingMs: -1}, ErrInvalidPing},
		{"ping notification huge", PingNotification{PingMs: MaxPingMs + 1}, ErrInvalidPing},
		{"ping", Ping{Value: 99}, nil},
		{"start", Start{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMsgTypeString(t *testing.T) {
	if got := (Attack{}).Type().String(); got != "attack" {
		t.Errorf("Attack type = %q, want attack", got)
	}
	if got := MsgType(999).String(); got != "msgtype(999)" {
		t.Errorf("unknown type = %q", got)
	}
}
