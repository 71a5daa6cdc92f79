package service

import (
	"github.com/tiagorb/enrollment-console/internal/model"
)

// PreferenceStore is the persisted settings backend (bbolt in production).
type PreferenceStore interface {
	Preferences() (model.Preferences, error)
	SavePreferences(prefs model.Preferences) error
}

type PreferenceService interface {
	Get() (model.Preferences, error)
	Save(prefs model.Preferences) (model.Preferences, error)
}

type preferenceService struct {
	store PreferenceStore
}

func NewPreferenceService(store PreferenceStore) PreferenceService {
	return &preferenceService{store: store}
}

func (s *preferenceService) Get() (model.Preferences, error) {
	return s.store.Preferences()
}

func (s *preferenceService) Save(prefs model.Preferences) (model.Preferences, error) {
	if prefs.Brightness < 0 || prefs.Brightness > 100 {
		prefs.Brightness = 100
	}
	if prefs.BackgroundColor == "" {
		prefs.BackgroundColor = model.DefaultPreferences().BackgroundColor
	}
	if prefs.Theme == nil {
		prefs.Theme = map[string]string{}
	}
	if err := s.store.SavePreferences(prefs); err != nil {
		return model.Preferences{}, err
	}
	return prefs, nil
}
