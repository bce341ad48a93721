package repository

import (
	"context"
	"errors"

	"uspage/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvitationRepo interface {
	GetInvitationById(ctx context.Context, id uint64) (*model.Invitation, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*model.Invitation, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.Invitation, error)
	CreateInvitation(ctx context.Context, invitation *model.Invitation) error
	UpdateInvitation(ctx context.Context, invitation *model.Invitation) error
	SoftDeleteInvitation(ctx context.Context, id uint64) error
	SlugExists(ctx context.Context, userID uint64, slug string, excludeID uint64) (bool, error)

	GetAttachment(ctx context.Context, invitationID, mediaID uint64) (*model.InvitationMedia, error)
	ListAttachedMedia(ctx context.Context, invitationID uint64) ([]*model.Media, error)
	CountAttachedMedia(ctx context.Context, invitationID uint64) (int64, error)
	UpsertAttachment(ctx context.Context, attachment *model.InvitationMedia) error
	DeleteAttachment(ctx context.Context, invitationID, mediaID uint64) error
}

type InvitationRepoImpl struct {
	db *gorm.DB
}

func NewInvitationRepo(db *gorm.DB) InvitationRepo {
	return &InvitationRepoImpl{db: db}
}

// GetInvitationById 含已软删除记录，属主路径需要看到回收站内容
func (s *InvitationRepoImpl) GetInvitationById(ctx context.Context, id uint64) (*model.Invitation, error) {
	invitation := &model.Invitation{}
	result := s.db.WithContext(ctx).
		Unscoped().
		First(invitation, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return invitation, nil
}

// GetPublishedBySlug 匿名公开路径，仅限已发布且未删除
func (s *InvitationRepoImpl) GetPublishedBySlug(ctx context.Context, slug string) (*model.Invitation, error) {
	invitation := &model.Invitation{}
	result := s.db.WithContext(ctx).
		Where("slug = ? AND is_published = ?", slug, true).
		Order("id ASC").
		First(invitation)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return invitation, nil
}

func (s *InvitationRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.Invitation, error) {
	invitations := make([]*model.Invitation, 0)
	result := s.db.WithContext(ctx).
		Unscoped().
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&invitations)
	if result.Error != nil {
		return nil, result.Error
	}
	return invitations, nil
}

func (s *InvitationRepoImpl) CreateInvitation(ctx context.Context, invitation *model.Invitation) error {
	return s.db.WithContext(ctx).Create(invitation).Error
}

func (s *InvitationRepoImpl) UpdateInvitation(ctx context.Context, invitation *model.Invitation) error {
	return s.db.WithContext(ctx).Save(invitation).Error
}

func (s *InvitationRepoImpl) SoftDeleteInvitation(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Invitation{}, id).Error
}

// SlugExists 同一用户下 slug 是否已占用，更新时排除自身 id
func (s *InvitationRepoImpl) SlugExists(ctx context.Context, userID uint64, slug string, excludeID uint64) (bool, error) {
	var count int64
	query := s.db.WithContext(ctx).
		Model(&model.Invitation{}).
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

func (s *InvitationRepoImpl) GetAttachment(ctx context.Context, invitationID, mediaID uint64) (*model.InvitationMedia, error) {
	attachment := &model.InvitationMedia{}
	result := s.db.WithContext(ctx).
		Where("invitation_id = ? AND media_id = ?", invitationID, mediaID).
		First(attachment)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return attachment, nil
}

func (s *InvitationRepoImpl) ListAttachedMedia(ctx context.Context, invitationID uint64) ([]*model.Media, error) {
	medias := make([]*model.Media, 0)
	result := s.db.WithContext(ctx).
		Model(&model.Media{}).
		Joins("JOIN invitation_media ON invitation_media.media_id = media.id").
		Where("invitation_media.invitation_id = ?", invitationID).
		Order("media.id ASC").
		Find(&medias)
	if result.Error != nil {
		return nil, result.Error
	}
	return medias, nil
}

func (s *InvitationRepoImpl) CountAttachedMedia(ctx context.Context, invitationID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.InvitationMedia{}).
		Where("invitation_id = ?", invitationID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// UpsertAttachment 重复关联时不报错，保证挂载幂等
func (s *InvitationRepoImpl) UpsertAttachment(ctx context.Context, attachment *model.InvitationMedia) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "invitation_id"}, {Name: "media_id"}},
			DoNothing: true,
		}).
		Create(attachment).Error
}

func (s *InvitationRepoImpl) DeleteAttachment(ctx context.Context, invitationID, mediaID uint64) error {
	return s.db.WithContext(ctx).
		Where("invitation_id = ? AND media_id = ?", invitationID, mediaID).
		Delete(&model.InvitationMedia{}).Error
}
