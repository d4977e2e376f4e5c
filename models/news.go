package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NewsItem represents a dated announcement. Date is kept as a YYYY-MM-DD
// string so lexicographic order matches chronological order.
type NewsItem struct {
	ID      int     `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Date    string  `json:"date" db:"date" gorm:"type:text;not null"`
	Content string  `json:"content" db:"content" gorm:"type:text;not null"`
	Link    *string `json:"link,omitempty" db:"link" gorm:"type:text"`
}

func (NewsItem) TableName() string {
	return "news"
}

// Validate checks the fields required for a create payload.
func (n NewsItem) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&n.Content, validation.Required),
	)
}
