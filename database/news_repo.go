package database

import (
	"gorm.io/gorm"

	"github.com/deepakagg123/deepakagg123.github.io/models"
)

type NewsRepo struct {
	db *gorm.DB
}

func NewNewsRepo(db *gorm.DB) *NewsRepo {
	return &NewsRepo{db}
}

// FindAll returns all news items newest first. Dates are YYYY-MM-DD strings,
// so lexicographic order is chronological.
func (r *NewsRepo) FindAll() ([]*models.NewsItem, error) {
	var items []*models.NewsItem
	err := r.db.Order("date DESC, id ASC").Find(&items).Error
	return items, err
}

// Add inserts a new news item into the database
func (r *NewsRepo) Add(item *models.NewsItem) error {
	item.ID = 0
	return r.db.Create(item).Error
}

// Delete removes a news item by id and reports whether a row was removed.
func (r *NewsRepo) Delete(id int) (bool, error) {
	result := r.db.Delete(&models.NewsItem{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
