package domain

import (
	"time"

	"gorm.io/datatypes"
)

type SiteSettings struct {
	ID int64 `json:"id" gorm:"primaryKey"`

	BrandName    *string `json:"brand_name,omitempty" gorm:"type:text"`
	HeroTitle    *string `json:"hero_title,omitempty" gorm:"type:text"`
	HeroSubtitle *string `json:"hero_subtitle,omitempty" gorm:"type:text"`
	TopBarText   *string `json:"top_bar_text,omitempty" gorm:"column:top_bar_text;type:text"`

	MetaPixelID *string `json:"meta_pixel_id,omitempty" gorm:"column:meta_pixel_id;type:text"`
	GoogleTagID *string `json:"google_tag_id,omitempty" gorm:"column:google_tag_id;type:text"`

	RappiURL     *string `json:"rappi_url,omitempty" gorm:"column:rappi_url;type:text"`
	PedidosYaURL *string `json:"pedidosya_url,omitempty" gorm:"column:pedidosya_url;type:text"`
	FacebookURL  *string `json:"facebook_url,omitempty" gorm:"column:facebook_url;type:text"`
	InstagramURL *string `json:"instagram_url,omitempty" gorm:"column:instagram_url;type:text"`
	TikTokURL    *string `json:"tiktok_url,omitempty" gorm:"column:tiktok_url;type:text"`
	WhatsAppURL  *string `json:"whatsapp_url,omitempty" gorm:"column:whatsapp_url;type:text"`
	ContactEmail *string `json:"contact_email,omitempty" gorm:"column:contact_email;type:text"`

	LogoURL           *string `json:"logo_url,omitempty" gorm:"column:logo_url;type:text"`
	FaviconURL        *string `json:"favicon_url,omitempty" gorm:"column:favicon_url;type:text"`
	FooterLogoURL     *string `json:"footer_logo_url,omitempty" gorm:"column:footer_logo_url;type:text"`
	ClaimsBookLogoURL *string `json:"libro_reclamaciones_logo_url,omitempty" gorm:"column:libro_reclamaciones_logo_url;type:text"`
	HeroImageURL      *string `json:"hero_image_url,omitempty" gorm:"column:hero_image_url;type:text"`

	Colors datatypes.JSONMap `json:"colors,omitempty" gorm:"column:colors"`

	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (SiteSettings) TableName() string { return "site_settings" }

// Resolved is the storefront view: the stored row merged over the
// theme defaults, so every field always carries a usable value.
type Resolved struct {
	BrandName    string `json:"brand_name"`
	HeroTitle    string `json:"hero_title"`
	HeroSubtitle string `json:"hero_subtitle"`
	TopBarText   string `json:"top_bar_text"`

	MetaPixelID string `json:"meta_pixel_id,omitempty"`
	GoogleTagID string `json:"google_tag_id,omitempty"`

	RappiURL     string `json:"rappi_url,omitempty"`
	PedidosYaURL string `json:"pedidosya_url,omitempty"`
	FacebookURL  string `json:"facebook_url,omitempty"`
	InstagramURL string `json:"instagram_url,omitempty"`
	TikTokURL    string `json:"tiktok_url,omitempty"`
	WhatsAppURL  string `json:"whatsapp_url,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`

	LogoURL           string `json:"logo_url,omitempty"`
	FaviconURL        string `json:"favicon_url,omitempty"`
	FooterLogoURL     string `json:"footer_logo_url,omitempty"`
	ClaimsBookLogoURL string `json:"libro_reclamaciones_logo_url,omitempty"`
	HeroImageURL      string `json:"hero_image_url,omitempty"`

	Colors map[string]string `json:"colors"`
}
