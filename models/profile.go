package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Profile represents the site owner. At most one row exists; writes go
// through an upsert that preserves the row id.
type Profile struct {
	ID          int     `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name        string  `json:"name" db:"name" gorm:"type:text;not null"`
	Title       string  `json:"title" db:"title" gorm:"type:text;not null"`
	Institution string  `json:"institution" db:"institution" gorm:"type:text;not null"`
	Bio         string  `json:"bio" db:"bio" gorm:"type:text;not null"`
	Email       string  `json:"email" db:"email" gorm:"type:text;not null"`
	GithubURL   *string `json:"githubUrl,omitempty" db:"github_url" gorm:"column:github_url;type:text"`
	ScholarURL  *string `json:"scholarUrl,omitempty" db:"scholar_url" gorm:"column:scholar_url;type:text"`
	TwitterURL  *string `json:"twitterUrl,omitempty" db:"twitter_url" gorm:"column:twitter_url;type:text"`
	LinkedinURL *string `json:"linkedinUrl,omitempty" db:"linkedin_url" gorm:"column:linkedin_url;type:text"`
	CvURL       *string `json:"cvUrl,omitempty" db:"cv_url" gorm:"column:cv_url;type:text"`
	ImageURL    *string `json:"imageUrl,omitempty" db:"image_url" gorm:"column:image_url;type:text"`
}

func (Profile) TableName() string {
	return "profile"
}

// Validate checks the fields required for an upsert payload.
func (p Profile) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Institution, validation.Required),
		validation.Field(&p.Bio, validation.Required),
		validation.Field(&p.Email, validation.Required),
	)
}
