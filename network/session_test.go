package network

import (
	"testing"
	"time"

	"github.com/yohamta/donburi"
)

var sessionTestTag = donburi.NewTag()

func TestSessionBindPlayerLastWriteWins(t *testing.T) {
	s := NewSession()
	if _, ok := s.PlayerID(); ok {
		t.Fatal("new session already has a player id")
	}

	s.BindPlayer(7)
	s.BindPlayer(9)

	id, ok := s.PlayerID()
	if !ok || id != 9 {
		t.Fatalf("PlayerID() = (%d, %v), want (9, true)", id, ok)
	}
	if s.IsPlayer(7) || !s.IsPlayer(9) {
		t.Fatal("IsPlayer does not follow the last binding")
	}
}

func TestSessionEndResetsEverything(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Create(sessionTestTag)

	s := NewSession()
	s.BindPlayer(3)
	s.SetClassName("WarriorCell")
	s.Start()
	s.SetPing(120 * time.Millisecond)
	s.BindControlled(e)

	s.End()

	if _, ok := s.PlayerID(); ok {
		t.Error("player id survived End")
	}
	if _, ok := s.Controlled(); ok {
		t.Error("controlled entity survived End")
	}
	if s.Started() || s.Ping() != 0 || s.ClassName() != "" {
		t.Errorf("session not reset: %+v", *s)
	}
}

func TestSessionUnbindControlled(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Create(sessionTestTag)

	s := NewSession()
	s.BindControlled(e)
	if got, ok := s.Controlled(); !ok || got != e {
		t.Fatalf("Controlled() = (%v, %v)", got, ok)
	}
	s.UnbindControlled()
	s.UnbindControlled()
	if _, ok := s.Controlled(); ok {
		t.Fatal("still bound after UnbindControlled")
	}
}
