package database

import (
	"fmt"
	log "log/slog"

	"uspage/internal/model"
	"uspage/internal/pkg/util"

	"gorm.io/gorm"
)

// AutoMigrate 同步表结构并补种系统主题
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Theme{},
		&model.Landing{},
		&model.Invitation{},
		&model.Media{},
		&model.LandingMedia{},
		&model.InvitationMedia{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seedSystemThemes(db); err != nil {
		return fmt.Errorf("failed to seed system themes: %w", err)
	}

	log.Info("Database migration completed.")
	return nil
}

// seedSystemThemes 系统预置主题，仅在不存在同名系统主题时插入
func seedSystemThemes(db *gorm.DB) error {
	themes := []model.Theme{
		{
			Name:           "Romántico",
			Description:    util.PtrStr("Tonos rosados y suaves para celebrar el amor"),
			PrimaryColor:   "#e91e63",
			SecondaryColor: "#f8bbd0",
			BgColor:        "#fff0f5",
			CssClass:       "theme-romantico",
		},
		{
			Name:           "Clásico",
			Description:    util.PtrStr("Elegancia atemporal en blanco y dorado"),
			PrimaryColor:   "#b8860b",
			SecondaryColor: "#f5f5dc",
			BgColor:        "#ffffff",
			CssClass:       "theme-clasico",
		},
		{
			Name:           "Nocturno",
			Description:    util.PtrStr("Fondo oscuro con acentos violetas"),
			PrimaryColor:   "#7c4dff",
			SecondaryColor: "#b39ddb",
			BgColor:        "#121212",
			CssClass:       "theme-nocturno",
		},
	}

	for _, theme := range themes {
		var count int64
		if err := db.Model(&model.Theme{}).
			Where("user_id IS NULL AND name = ?", theme.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&theme).Error; err != nil {
			return err
		}
	}
	return nil
}
