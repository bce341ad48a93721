package repository

import (
	"context"
	"errors"

	"uspage/internal/model"

	"gorm.io/gorm"
)

type ThemeRepo interface {
	GetThemeById(ctx context.Context, id uint64) (*model.Theme, error)
	ListAccessible(ctx context.Context, userID uint64) ([]*model.Theme, error)
	CreateTheme(ctx context.Context, theme *model.Theme) error
	UpdateTheme(ctx context.Context, theme *model.Theme) error
	DeleteTheme(ctx context.Context, id uint64) error
	CountLandingsUsingTheme(ctx context.Context, themeID uint64) (int64, error)
}

type ThemeRepoImpl struct {
	db *gorm.DB
}

func NewThemeRepo(db *gorm.DB) ThemeRepo {
	return &ThemeRepoImpl{db: db}
}

func (s *ThemeRepoImpl) GetThemeById(ctx context.Context, id uint64) (*model.Theme, error) {
	theme := &model.Theme{}
	result := s.db.WithContext(ctx).First(theme, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return theme, nil
}

// ListAccessible 系统主题 + 用户自有主题
func (s *ThemeRepoImpl) ListAccessible(ctx context.Context, userID uint64) ([]*model.Theme, error) {
	themes := make([]*model.Theme, 0)
	result := s.db.WithContext(ctx).
		Where("user_id IS NULL OR user_id = ?", userID).
		Order("user_id IS NULL DESC, id ASC").
		Find(&themes)
	if result.Error != nil {
		return nil, result.Error
	}
	return themes, nil
}

func (s *ThemeRepoImpl) CreateTheme(ctx context.Context, theme *model.Theme) error {
	return s.db.WithContext(ctx).Create(theme).Error
}

func (s *ThemeRepoImpl) UpdateTheme(ctx context.Context, theme *model.Theme) error {
	return s.db.WithContext(ctx).Save(theme).Error
}

func (s *ThemeRepoImpl) DeleteTheme(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Theme{}, id).Error
}

// CountLandingsUsingTheme 软删除的页面仍持有 theme_id，占用计数必须包含回收站
func (s *ThemeRepoImpl) CountLandingsUsingTheme(ctx context.Context, themeID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Unscoped().
		Model(&model.Landing{}).
		Where("theme_id = ?", themeID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
