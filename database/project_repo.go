package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/deepakagg123/deepakagg123.github.io/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects in insertion order.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Order("id ASC").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when no row matches.
func (r *ProjectRepo) FindByID(id int) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	project.ID = 0
	return r.db.Create(project).Error
}

// Update applies the provided fields to an existing project and returns the
// stored row, or nil when the id matches no row.
func (r *ProjectRepo) Update(id int, fields map[string]any) (*models.Project, error) {
	existing, err := r.FindByID(id)
	if err != nil || existing == nil {
		return nil, err
	}

	if len(fields) > 0 {
		err := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}

	return r.FindByID(id)
}

// Delete removes a project by id and reports whether a row was removed.
func (r *ProjectRepo) Delete(id int) (bool, error) {
	result := r.db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
