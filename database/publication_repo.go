package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/deepakagg123/deepakagg123.github.io/models"
)

type PublicationRepo struct {
	db *gorm.DB
}

func NewPublicationRepo(db *gorm.DB) *PublicationRepo {
	return &PublicationRepo{db}
}

// FindAll returns all publications ordered by year descending. Ties fall
// back to id order so listings are stable across reads.
func (r *PublicationRepo) FindAll() ([]*models.Publication, error) {
	var publications []*models.Publication
	err := r.db.Order("year DESC, id ASC").Find(&publications).Error
	return publications, err
}

// FindByID returns a publication by its ID, or nil when no row matches.
func (r *PublicationRepo) FindByID(id int) (*models.Publication, error) {
	var publication models.Publication
	err := r.db.First(&publication, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &publication, nil
}

// Add inserts a new publication into the database
func (r *PublicationRepo) Add(publication *models.Publication) error {
	publication.ID = 0
	return r.db.Create(publication).Error
}

// Update applies the provided fields to an existing publication and returns
// the stored row, or nil when the id matches no row.
func (r *PublicationRepo) Update(id int, fields map[string]any) (*models.Publication, error) {
	existing, err := r.FindByID(id)
	if err != nil || existing == nil {
		return nil, err
	}

	if len(fields) > 0 {
		err := r.db.Model(&models.Publication{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}

	return r.FindByID(id)
}

// Delete removes a publication by id and reports whether a row was removed.
func (r *PublicationRepo) Delete(id int) (bool, error) {
	result := r.db.Delete(&models.Publication{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
