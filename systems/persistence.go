package systems

import (
	"encoding/json"

	cfg "github.com/automoto/nanowar-mp/config"
	"github.com/automoto/nanowar-mp/logger"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ServerAddress       string  `json:"serverAddress"`
	PredictionEnabled   bool    `json:"predictionEnabled"`
	PredictionThreshold float64 `json:"predictionThreshold"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

var persistLog = logger.For("persistence")

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "nanowar",
	})
	if err != nil {
		persistLog.WithError(err).Warn("could not initialize persistence")
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		persistLog.WithError(err).Warn("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		persistLog.WithError(err).Warn("could not parse saved settings")
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		persistLog.WithError(err).Warn("could not serialize settings")
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		persistLog.WithError(err).Warn("could not save settings")
		return err
	}
	return nil
}

// CurrentSettings snapshots the runtime configuration for saving
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		ServerAddress:       cfg.Network.ServerAddress,
		PredictionEnabled:   cfg.Prediction.Enabled,
		PredictionThreshold: cfg.Prediction.Threshold,
	}
}

// ApplySavedSettings copies loaded settings into the runtime configuration.
// Missing or invalid values keep their defaults.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.ServerAddress != "" {
		cfg.Network.ServerAddress = saved.ServerAddress
	}
	cfg.Prediction.Enabled = saved.PredictionEnabled
	if saved.PredictionThreshold > 0 {
		cfg.Prediction.Threshold = saved.PredictionThreshold
	}
}
