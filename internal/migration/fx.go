package migration

import (
	authdomain "github.com/fogonlabs/fogon/internal/auth/domain"
	categorydomain "github.com/fogonlabs/fogon/internal/category/domain"
	claimdomain "github.com/fogonlabs/fogon/internal/claim/domain"
	"github.com/fogonlabs/fogon/internal/config"
	legalpagedomain "github.com/fogonlabs/fogon/internal/legalpage/domain"
	productdomain "github.com/fogonlabs/fogon/internal/product/domain"
	"github.com/fogonlabs/fogon/internal/seed"
	sitesettingsdomain "github.com/fogonlabs/fogon/internal/sitesettings/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// mysql/sqlite dev mode rides on gorm's schema sync.
			if err := conn.AutoMigrate(
				&claimdomain.Claim{},
				&categorydomain.Category{},
				&productdomain.Product{},
				&sitesettingsdomain.SiteSettings{},
				&legalpagedomain.LegalPage{},
				&authdomain.User{},
				&authdomain.Session{},
			); err != nil {
				return err
			}
		}

		if err := seed.EnsureDefaultSettings(conn); err != nil {
			return err
		}
		if cfg.BootstrapAdminEmail != "" && cfg.BootstrapAdminPassword != "" {
			return seed.EnsureAdminUser(conn, cfg.BootstrapAdminEmail, cfg.BootstrapAdminPassword)
		}
		return nil
	}),
)
