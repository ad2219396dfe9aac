package domain

import (
	"time"

	"github.com/fogonlabs/fogon/internal/pricing"
)

type Product struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	CategoryID      *int64    `json:"category_id,omitempty" gorm:"column:category_id;index:ix_products_category"`
	Slug            string    `json:"slug" gorm:"type:text;not null;uniqueIndex:ux_products_slug"`
	Name            string    `json:"name" gorm:"type:text;not null"`
	Description     *string   `json:"description,omitempty" gorm:"type:text"`
	ImageURL        *string   `json:"image_url,omitempty" gorm:"type:text"`
	PriceAmount     *float64  `json:"price_amount,omitempty" gorm:"column:price_amount"`
	PriceDisplay    *string   `json:"price_display,omitempty" gorm:"column:price_display;type:text"`
	DiscountPercent *float64  `json:"discount_percent,omitempty" gorm:"column:discount_percent"`
	DisplayOrder    int       `json:"display_order" gorm:"column:display_order;not null;default:0"`
	Active          bool      `json:"is_active" gorm:"column:is_active;not null;default:true"`
	CreatedAt       time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "products" }

// View is a Product plus the price labels the storefront renders.
type View struct {
	Product
	Pricing pricing.Info `json:"pricing"`
}

func NewView(p Product) View {
	display := ""
	if p.PriceDisplay != nil {
		display = *p.PriceDisplay
	}
	return View{
		Product: p,
		Pricing: pricing.Compute(p.PriceAmount, display, p.DiscountPercent),
	}
}
