package domain

import "time"

type Category struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Slug         string    `json:"slug" gorm:"type:text;not null;uniqueIndex:ux_categories_slug"`
	Name         string    `json:"name" gorm:"type:text;not null"`
	Description  *string   `json:"description,omitempty" gorm:"type:text"`
	ImageURL     *string   `json:"image_url,omitempty" gorm:"type:text"`
	DisplayOrder int       `json:"display_order" gorm:"column:display_order;not null;default:0"`
	Active       bool      `json:"is_active" gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Category) TableName() string { return "categories" }
