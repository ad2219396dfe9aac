package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ThemeDefaults are the fallback branding values used whenever the
// site_settings row is missing a field. They can be overridden from a
// theme.yml so a deployment can re-skin without touching the database.
type ThemeDefaults struct {
	BrandName    string `mapstructure:"brandName"`
	HeroTitle    string `mapstructure:"heroTitle"`
	HeroSubtitle string `mapstructure:"heroSubtitle"`
	TopBarText   string `mapstructure:"topBarText"`

	TopBarBg            string `mapstructure:"topBarBg"`
	TopBarTextColor     string `mapstructure:"topBarTextColor"`
	HeaderBg            string `mapstructure:"headerBg"`
	HeaderTextColor     string `mapstructure:"headerTextColor"`
	PageBg              string `mapstructure:"pageBg"`
	AccentColor         string `mapstructure:"accentColor"`
	AccentTextColor     string `mapstructure:"accentTextColor"`
	PillBg              string `mapstructure:"pillBg"`
	PillTextColor       string `mapstructure:"pillTextColor"`
	PillActiveBg        string `mapstructure:"pillActiveBg"`
	PillActiveTextColor string `mapstructure:"pillActiveTextColor"`
	FooterBg            string `mapstructure:"footerBg"`
	FooterTextColor     string `mapstructure:"footerTextColor"`
}

func DefaultTheme() ThemeDefaults {
	return ThemeDefaults{
		BrandName:    "Restaurante",
		HeroTitle:    "Cocina honesta, sabor diario",
		HeroSubtitle: "Un menu breve, ingredientes frescos y pedidos por delivery.",
		TopBarText:   "Encuentranos en Rappi y PedidosYa",

		TopBarBg:            "#3b2a1a",
		TopBarTextColor:     "#ffffff",
		HeaderBg:            "#0c5447",
		HeaderTextColor:     "#fee8d2",
		PageBg:              "#fee8d2",
		AccentColor:         "#ee7721",
		AccentTextColor:     "#ffffff",
		PillBg:              "#fee8d2",
		PillTextColor:       "#0c5447",
		PillActiveBg:        "#ee7721",
		PillActiveTextColor: "#ffffff",
		FooterBg:            "#ee7721",
		FooterTextColor:     "#ffffff",
	}
}

// ThemeHolder keeps the current theme defaults and hot-reloads them
// when theme.yml changes on disk.
type ThemeHolder struct {
	current atomic.Value // holds ThemeDefaults
}

func NewThemeHolder() (*ThemeHolder, error) {
	v := viper.New()

	v.SetConfigName("theme")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/fogon")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FOGON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultTheme()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := defaults
	if err := v.UnmarshalKey("theme", &cfg); err != nil {
		return nil, err
	}
	fillThemeDefaults(&cfg, defaults)
	if err := validateTheme(cfg); err != nil {
		return nil, err
	}

	holder := &ThemeHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		updated := DefaultTheme()
		if err := v.UnmarshalKey("theme", &updated); err != nil {
			log.Printf("[theme-config] reload failed: %v", err)
			return
		}
		fillThemeDefaults(&updated, defaults)
		if err := validateTheme(updated); err != nil {
			log.Printf("[theme-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[theme-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *ThemeHolder) Get() ThemeDefaults {
	return h.current.Load().(ThemeDefaults)
}

func fillThemeDefaults(cfg *ThemeDefaults, defaults ThemeDefaults) {
	if strings.TrimSpace(cfg.BrandName) == "" {
		cfg.BrandName = defaults.BrandName
	}
	if strings.TrimSpace(cfg.AccentColor) == "" {
		cfg.AccentColor = defaults.AccentColor
	}
	if strings.TrimSpace(cfg.PageBg) == "" {
		cfg.PageBg = defaults.PageBg
	}
}

func validateTheme(cfg ThemeDefaults) error {
	if strings.TrimSpace(cfg.BrandName) == "" {
		return errors.New("theme.brandName cannot be empty")
	}
	return nil
}
