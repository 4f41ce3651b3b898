package systems

import (
	"testing"

	cfg "github.com/automoto/nanowar-mp/config"
)

func TestApplySavedSettings(t *testing.T) {
	network, prediction := cfg.Network, cfg.Prediction
	t.Cleanup(func() {
		cfg.Network, cfg.Prediction = network, prediction
	})

	ApplySavedSettings(nil)
	if cfg.Network != network || cfg.Prediction != prediction {
		t.Fatal("nil settings changed the configuration")
	}

	ApplySavedSettings(&SavedSettings{
		ServerAddress:       "game.example:9000",
		PredictionEnabled:   true,
		PredictionThreshold: 4,
	})
	if cfg.Network.ServerAddress != "game.example:9000" || !cfg.Prediction.Enabled || cfg.Prediction.Threshold != 4 {
		t.Fatalf("network %+v prediction %+v", cfg.Network, cfg.Prediction)
	}

	ApplySavedSettings(&SavedSettings{PredictionThreshold: -1})
	if cfg.Network.ServerAddress != "game.example:9000" {
		t.Errorf("empty address overwrote %q", cfg.Network.ServerAddress)
	}
	if cfg.Prediction.Enabled {
		t.Error("prediction still enabled")
	}
	if cfg.Prediction.Threshold != 4 {
		t.Errorf("invalid threshold applied: %v", cfg.Prediction.Threshold)
	}

	if got := CurrentSettings(); got.ServerAddress != "game.example:9000" || got.PredictionThreshold != 4 {
		t.Fatalf("CurrentSettings() = %+v", got)
	}
}
