package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Project represents a research or software project. Technologies is a
// free-text comma-separated list that the client renders as tags.
type Project struct {
	ID           int     `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title        string  `json:"title" db:"title" gorm:"type:text;not null"`
	Description  string  `json:"description" db:"description" gorm:"type:text;not null"`
	ImageURL     *string `json:"imageUrl,omitempty" db:"image_url" gorm:"column:image_url;type:text"`
	Link         *string `json:"link,omitempty" db:"link" gorm:"type:text"`
	Technologies *string `json:"technologies,omitempty" db:"technologies" gorm:"type:text"`
}

// Validate checks the fields required for a create payload.
func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Description, validation.Required),
	)
}

// UpdateProject is a partial update payload. Nil fields are left untouched
// in the stored row.
type UpdateProject struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"imageUrl"`
	Link         *string `json:"link"`
	Technologies *string `json:"technologies"`
}

// Validate rejects provided-but-empty required fields.
func (u UpdateProject) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Title, validation.NilOrNotEmpty),
		validation.Field(&u.Description, validation.NilOrNotEmpty),
	)
}

// Fields returns the column/value pairs present in the payload.
func (u UpdateProject) Fields() map[string]any {
	fields := make(map[string]any)
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.ImageURL != nil {
		fields["image_url"] = *u.ImageURL
	}
	if u.Link != nil {
		fields["link"] = *u.Link
	}
	if u.Technologies != nil {
		fields["technologies"] = *u.Technologies
	}
	return fields
}
