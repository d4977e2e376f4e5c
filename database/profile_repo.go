package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/deepakagg123/deepakagg123.github.io/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// Get returns the single profile row, or nil when none exists yet. Absence
// is not an error at this layer.
func (r *ProfileRepo) Get() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert overwrites the existing profile row in place, keeping its id, or
// inserts a new row when none exists. The stored row is returned.
func (r *ProfileRepo) Upsert(profile *models.Profile) (*models.Profile, error) {
	existing, err := r.Get()
	if err != nil {
		return nil, err
	}

	if existing != nil {
		profile.ID = existing.ID
		if err := r.db.Save(profile).Error; err != nil {
			return nil, err
		}
		return profile, nil
	}

	profile.ID = 0
	if err := r.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
