package repository

import (
	"context"
	"errors"

	"uspage/internal/model"

	"gorm.io/gorm"
)

type MediaRepo interface {
	GetMediaById(ctx context.Context, id uint64) (*model.Media, error)
	GetMediaByPath(ctx context.Context, path string) (*model.Media, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.Media, error)
	CreateMedia(ctx context.Context, media *model.Media) error
	DeleteMedia(ctx context.Context, id uint64) error
	CountReferences(ctx context.Context, mediaID uint64) (int64, error)
}

type MediaRepoImpl struct {
	db *gorm.DB
}

func NewMediaRepo(db *gorm.DB) MediaRepo {
	return &MediaRepoImpl{db: db}
}

func (s *MediaRepoImpl) GetMediaById(ctx context.Context, id uint64) (*model.Media, error) {
	media := &model.Media{}
	result := s.db.WithContext(ctx).First(media, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return media, nil
}

// GetMediaByPath 按对象存储路径查找，清理任务用它确认孤儿对象确实没有对应行
func (s *MediaRepoImpl) GetMediaByPath(ctx context.Context, path string) (*model.Media, error) {
	media := &model.Media{}
	result := s.db.WithContext(ctx).Where("path = ?", path).First(media)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return media, nil
}

func (s *MediaRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.Media, error) {
	medias := make([]*model.Media, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&medias)
	if result.Error != nil {
		return nil, result.Error
	}
	return medias, nil
}

func (s *MediaRepoImpl) CreateMedia(ctx context.Context, media *model.Media) error {
	return s.db.WithContext(ctx).Create(media).Error
}

func (s *MediaRepoImpl) DeleteMedia(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Media{}, id).Error
}

// CountReferences 统计媒体被主题背景、页面关联和邀请关联引用的总次数
// 单条查询覆盖三类引用，避免多次往返
func (s *MediaRepoImpl) CountReferences(ctx context.Context, mediaID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM themes WHERE bg_image_media_id = ?) +
			(SELECT COUNT(*) FROM landing_media WHERE media_id = ?) +
			(SELECT COUNT(*) FROM invitation_media WHERE media_id = ?)`,
		mediaID, mediaID, mediaID,
	).Scan(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
