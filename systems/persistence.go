package systems

import (
	"encoding/json"

	cfg "github.com/automoto/firstperson/config"
	"github.com/quasilyte/gdata"
	"github.com/sirupsen/logrus"
)

const preferencesKey = "preferences"

var gdataManager *gdata.Manager

var persistLog = logrus.WithField("system", "persistence")

// InitPersistence opens the per-user data directory for preference storage.
// Without it preferences simply are not saved.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "firstperson",
	})
	if err != nil {
		persistLog.WithError(err).Warn("could not initialize persistence")
		return err
	}
	gdataManager = m
	return nil
}

// LoadPreferences reads the saved preferences. A missing save yields nil
// with no error.
func LoadPreferences() (*cfg.Preferences, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(preferencesKey)
	if err != nil {
		persistLog.WithError(err).Warn("could not load preferences")
		return nil, nil
	}
	if len(data) == 0 {
		// No saved preferences yet, use defaults
		return nil, nil
	}

	var prefs cfg.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		persistLog.WithError(err).Warn("could not parse saved preferences")
		return nil, err
	}

	return &prefs, nil
}

// SavePreferences writes p to disk.
func SavePreferences(p cfg.Preferences) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		persistLog.WithError(err).Warn("could not serialize preferences")
		return err
	}

	if err := gdataManager.SaveItem(preferencesKey, data); err != nil {
		persistLog.WithError(err).Warn("could not save preferences")
		return err
	}
	persistLog.WithField("preferences", p).Debug("preferences saved")
	return nil
}
