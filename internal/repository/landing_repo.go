package repository

import (
	"context"
	"errors"

	"uspage/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttachedMedia 关联媒体及其排序值
type AttachedMedia struct {
	model.Media
	SortOrder int
}

type LandingRepo interface {
	GetLandingById(ctx context.Context, id uint64) (*model.Landing, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*model.Landing, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.Landing, error)
	CreateLanding(ctx context.Context, landing *model.Landing) error
	UpdateLanding(ctx context.Context, landing *model.Landing) error
	SoftDeleteLanding(ctx context.Context, id uint64) error
	SlugExists(ctx context.Context, userID uint64, slug string, excludeID uint64) (bool, error)

	GetAttachment(ctx context.Context, landingID, mediaID uint64) (*model.LandingMedia, error)
	ListAttachedMedia(ctx context.Context, landingID uint64) ([]*AttachedMedia, error)
	CountAttachedMedia(ctx context.Context, landingID uint64) (int64, error)
	MaxSortOrder(ctx context.Context, landingID uint64) (int, error)
	UpsertAttachment(ctx context.Context, attachment *model.LandingMedia) error
	DeleteAttachment(ctx context.Context, landingID, mediaID uint64) error
}

type LandingRepoImpl struct {
	db *gorm.DB
}

func NewLandingRepo(db *gorm.DB) LandingRepo {
	return &LandingRepoImpl{db: db}
}

// GetLandingById 含已软删除记录，属主路径需要看到回收站内容
func (s *LandingRepoImpl) GetLandingById(ctx context.Context, id uint64) (*model.Landing, error) {
	landing := &model.Landing{}
	result := s.db.WithContext(ctx).
		Unscoped().
		Preload("Theme").
		First(landing, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return landing, nil
}

// GetPublishedBySlug 匿名公开路径，仅限已发布且未删除
func (s *LandingRepoImpl) GetPublishedBySlug(ctx context.Context, slug string) (*model.Landing, error) {
	landing := &model.Landing{}
	result := s.db.WithContext(ctx).
		Preload("Theme").
		Where("slug = ? AND is_published = ?", slug, true).
		Order("id ASC").
		First(landing)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return landing, nil
}

func (s *LandingRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.Landing, error) {
	landings := make([]*model.Landing, 0)
	result := s.db.WithContext(ctx).
		Unscoped().
		Preload("Theme").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&landings)
	if result.Error != nil {
		return nil, result.Error
	}
	return landings, nil
}

func (s *LandingRepoImpl) CreateLanding(ctx context.Context, landing *model.Landing) error {
	return s.db.WithContext(ctx).Create(landing).Error
}

func (s *LandingRepoImpl) UpdateLanding(ctx context.Context, landing *model.Landing) error {
	return s.db.WithContext(ctx).Save(landing).Error
}

func (s *LandingRepoImpl) SoftDeleteLanding(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Landing{}, id).Error
}

// SlugExists 同一用户下 slug 是否已占用，更新时排除自身 id
func (s *LandingRepoImpl) SlugExists(ctx context.Context, userID uint64, slug string, excludeID uint64) (bool, error) {
	var count int64
	query := s.db.WithContext(ctx).
		Model(&model.Landing{}).
		Unscoped().
		Where("user_id = ? AND slug = ?", userID, slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *LandingRepoImpl) GetAttachment(ctx context.Context, landingID, mediaID uint64) (*model.LandingMedia, error) {
	attachment := &model.LandingMedia{}
	result := s.db.WithContext(ctx).
		Where("landing_id = ? AND media_id = ?", landingID, mediaID).
		First(attachment)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return attachment, nil
}

func (s *LandingRepoImpl) ListAttachedMedia(ctx context.Context, landingID uint64) ([]*AttachedMedia, error) {
	medias := make([]*AttachedMedia, 0)
	result := s.db.WithContext(ctx).
		Model(&model.Media{}).
		Select("media.*, landing_media.sort_order").
		Joins("JOIN landing_media ON landing_media.media_id = media.id").
		Where("landing_media.landing_id = ?", landingID).
		Order("landing_media.sort_order ASC, media.id ASC").
		Scan(&medias)
	if result.Error != nil {
		return nil, result.Error
	}
	return medias, nil
}

func (s *LandingRepoImpl) CountAttachedMedia(ctx context.Context, landingID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.LandingMedia{}).
		Where("landing_id = ?", landingID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *LandingRepoImpl) MaxSortOrder(ctx context.Context, landingID uint64) (int, error) {
	var max int
	result := s.db.WithContext(ctx).
		Model(&model.LandingMedia{}).
		Where("landing_id = ?", landingID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max)
	if result.Error != nil {
		return 0, result.Error
	}
	return max, nil
}

// UpsertAttachment 重复关联时仅更新排序值，保证挂载幂等
func (s *LandingRepoImpl) UpsertAttachment(ctx context.Context, attachment *model.LandingMedia) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "landing_id"}, {Name: "media_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"sort_order"}),
		}).
		Create(attachment).Error
}

func (s *LandingRepoImpl) DeleteAttachment(ctx context.Context, landingID, mediaID uint64) error {
	return s.db.WithContext(ctx).
		Where("landing_id = ? AND media_id = ?", landingID, mediaID).
		Delete(&model.LandingMedia{}).Error
}
