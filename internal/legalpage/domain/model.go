package domain

import "time"

type LegalPage struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Slug      string    `json:"slug" gorm:"type:text;not null;uniqueIndex:ux_legal_pages_slug"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (LegalPage) TableName() string { return "legal_pages" }
