package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Publication represents a paper or article. IsSelected marks it for the
// featured view on the home page.
type Publication struct {
	ID         int     `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title      string  `json:"title" db:"title" gorm:"type:text;not null"`
	Authors    string  `json:"authors" db:"authors" gorm:"type:text;not null"`
	Venue      string  `json:"venue" db:"venue" gorm:"type:text;not null"`
	Year       int     `json:"year" db:"year" gorm:"not null"`
	Abstract   *string `json:"abstract,omitempty" db:"abstract" gorm:"type:text"`
	PdfURL     *string `json:"pdfUrl,omitempty" db:"pdf_url" gorm:"column:pdf_url;type:text"`
	CodeURL    *string `json:"codeUrl,omitempty" db:"code_url" gorm:"column:code_url;type:text"`
	ProjectURL *string `json:"projectUrl,omitempty" db:"project_url" gorm:"column:project_url;type:text"`
	IsSelected bool    `json:"isSelected" db:"is_selected" gorm:"column:is_selected;not null;default:false"`
}

// Validate checks the fields required for a create payload.
func (p Publication) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Authors, validation.Required),
		validation.Field(&p.Venue, validation.Required),
		validation.Field(&p.Year, validation.Required),
	)
}

// UpdatePublication is a partial update payload. Nil fields are left
// untouched in the stored row.
type UpdatePublication struct {
	Title      *string `json:"title"`
	Authors    *string `json:"authors"`
	Venue      *string `json:"venue"`
	Year       *int    `json:"year"`
	Abstract   *string `json:"abstract"`
	PdfURL     *string `json:"pdfUrl"`
	CodeURL    *string `json:"codeUrl"`
	ProjectURL *string `json:"projectUrl"`
	IsSelected *bool   `json:"isSelected"`
}

// Validate rejects provided-but-empty required fields.
func (u UpdatePublication) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Title, validation.NilOrNotEmpty),
		validation.Field(&u.Authors, validation.NilOrNotEmpty),
		validation.Field(&u.Venue, validation.NilOrNotEmpty),
		validation.Field(&u.Year, validation.NilOrNotEmpty),
	)
}

// Fields returns the column/value pairs present in the payload.
func (u UpdatePublication) Fields() map[string]any {
	fields := make(map[string]any)
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Authors != nil {
		fields["authors"] = *u.Authors
	}
	if u.Venue != nil {
		fields["venue"] = *u.Venue
	}
	if u.Year != nil {
		fields["year"] = *u.Year
	}
	if u.Abstract != nil {
		fields["abstract"] = *u.Abstract
	}
	if u.PdfURL != nil {
		fields["pdf_url"] = *u.PdfURL
	}
	if u.CodeURL != nil {
		fields["code_url"] = *u.CodeURL
	}
	if u.ProjectURL != nil {
		fields["project_url"] = *u.ProjectURL
	}
	if u.IsSelected != nil {
		fields["is_selected"] = *u.IsSelected
	}
	return fields
}
