package database

import (
	"gorm.io/gorm"

	"github.com/deepakagg123/deepakagg123.github.io/models"
)

type Database struct {
	profileRepo     *ProfileRepo
	publicationRepo *PublicationRepo
	projectRepo     *ProjectRepo
	newsRepo        *NewsRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		profileRepo:     NewProfileRepo(db),
		publicationRepo: NewPublicationRepo(db),
		projectRepo:     NewProjectRepo(db),
		newsRepo:        NewNewsRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) PublicationRepo() *PublicationRepo {
	return d.publicationRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) NewsRepo() *NewsRepo {
	return d.newsRepo
}

// Migrate creates or updates the four tables backing the site.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.Publication{},
		&models.Project{},
		&models.NewsItem{},
	)
}
