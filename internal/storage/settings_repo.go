package storage

import (
	"github.com/google/uuid"

	"taskline/internal/model"
)

// SettingsRepo provides operations for the Settings singleton.
type SettingsRepo struct {
	db *DB
}

// NewSettingsRepo creates a new settings repository.
func NewSettingsRepo(db *DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get retrieves the settings, creating defaults if they don't exist.
func (r *SettingsRepo) Get() (*model.Settings, error) {
	settings := &model.Settings{}
	err := r.db.Get(model.KeySettings, settings)
	if err == nil {
		return settings, nil
	}

	if !IsErrKeyNotFound(err) {
		return nil, err
	}

	// First run: create defaults with a generated install key
	installKey, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	settings = model.NewSettings(installKey.String())
	if err := r.db.Set(settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Update updates the settings.
func (r *SettingsRepo) Update(settings *model.Settings) error {
	return r.db.Set(settings)
}
