package domain

import "context"

type Service interface {
	// Get resolves the stored settings over the theme defaults.
	Get(ctx context.Context) (*Resolved, error)
	// GetRaw returns the stored row as-is for the admin editor; nil
	// fields mean "inherit the default".
	GetRaw(ctx context.Context) (*SiteSettings, error)
	Update(ctx context.Context, req UpdateRequest) (*Resolved, error)
}

// UpdateRequest carries only the fields present in the payload; a
// present-but-empty string clears the stored value back to inherit.
type UpdateRequest struct {
	BrandName    *string `json:"brand_name"`
	HeroTitle    *string `json:"hero_title"`
	HeroSubtitle *string `json:"hero_subtitle"`
	TopBarText   *string `json:"top_bar_text"`

	MetaPixelID *string `json:"meta_pixel_id"`
	GoogleTagID *string `json:"google_tag_id"`

	RappiURL     *string `json:"rappi_url"`
	PedidosYaURL *string `json:"pedidosya_url"`
	FacebookURL  *string `json:"facebook_url"`
	InstagramURL *string `json:"instagram_url"`
	TikTokURL    *string `json:"tiktok_url"`
	WhatsAppURL  *string `json:"whatsapp_url"`
	ContactEmail *string `json:"contact_email"`

	LogoURL           *string `json:"logo_url"`
	FaviconURL        *string `json:"favicon_url"`
	FooterLogoURL     *string `json:"footer_logo_url"`
	ClaimsBookLogoURL *string `json:"libro_reclamaciones_logo_url"`
	HeroImageURL      *string `json:"hero_image_url"`

	Colors map[string]string `json:"colors"`
}
