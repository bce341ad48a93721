package service

import (
	"context"
	"fmt"

	"uspage/internal/api/dto"
	"uspage/internal/model"
	"uspage/internal/pkg/consts"
	"uspage/internal/pkg/util"
	"uspage/internal/repository"

	"github.com/jinzhu/copier"
)

// 创建邀请时的缺省文案
const (
	DefaultInvitationTitle = "¿Quieres ser mi San Valentín?"
	DefaultYesMessage      = "Sí"
)

func DefaultNoMessages() model.StringList {
	return model.StringList{"No", "Tal vez", "No te arrepentirás", "Piénsalo mejor"}
}

type InvitationService interface {
	List(ctx context.Context, userID uint64) ([]*dto.InvitationDTO, error)
	Create(ctx context.Context, userID uint64, dto *dto.CreateInvitationDTO) (*dto.InvitationDTO, error)
	GetOwned(ctx context.Context, id uint64, userID uint64) (*dto.InvitationDTO, error)
	GetPublicBySlug(ctx context.Context, slug string) (*dto.InvitationDTO, error)
	Update(ctx context.Context, id uint64, userID uint64, dto *dto.UpdateInvitationDTO) (*dto.InvitationDTO, error)
	Delete(ctx context.Context, id uint64, userID uint64) error

	AttachMedia(ctx context.Context, invitationID uint64, userID uint64, mediaID uint64) error
	DetachMedia(ctx context.Context, invitationID uint64, mediaID uint64, userID uint64) error
}

type InvitationServiceImpl struct {
	invitationRepo repository.InvitationRepo
	mediaSvc       MediaService
}

func NewInvitationService(invitationRepo repository.InvitationRepo, mediaSvc MediaService) InvitationService {
	return &InvitationServiceImpl{
		invitationRepo: invitationRepo,
		mediaSvc:       mediaSvc,
	}
}

func (s *InvitationServiceImpl) List(ctx context.Context, userID uint64) ([]*dto.InvitationDTO, error) {
	invitations, err := s.invitationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.InvitationDTO, 0, len(invitations))
	for _, invitation := range invitations {
		invitationDTO, err := s.toInvitationDTO(ctx, invitation, false)
		if err != nil {
			return nil, err
		}
		result = append(result, invitationDTO)
	}
	return result, nil
}

func (s *InvitationServiceImpl) Create(ctx context.Context, userID uint64, createDTO *dto.CreateInvitationDTO) (*dto.InvitationDTO, error) {
	invitation := &model.Invitation{
		UserID:      userID,
		Title:       DefaultInvitationTitle,
		YesMessage:  DefaultYesMessage,
		NoMessages:  DefaultNoMessages(),
		IsPublished: false,
	}
	if createDTO.Title != nil {
		invitation.Title = *createDTO.Title
	}
	if createDTO.YesMessage != nil {
		invitation.YesMessage = *createDTO.YesMessage
	}
	if createDTO.NoMessages != nil {
		invitation.NoMessages = createDTO.NoMessages
	}
	if createDTO.IsPublished != nil {
		invitation.IsPublished = *createDTO.IsPublished
	}

	slug, err := s.resolveSlug(ctx, userID, invitation.Title, createDTO.Slug, 0)
	if err != nil {
		return nil, err
	}
	invitation.Slug = slug

	if err = s.invitationRepo.CreateInvitation(ctx, invitation); err != nil {
		// 唯一索引是并发下的最终裁决
		if repository.IsDuplicateKeyErr(err) {
			return nil, ErrInvitationSlugTaken
		}
		return nil, err
	}

	return s.toInvitationDTO(ctx, invitation, true)
}

func (s *InvitationServiceImpl) GetOwned(ctx context.Context, id uint64, userID uint64) (*dto.InvitationDTO, error) {
	invitation, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return s.toInvitationDTO(ctx, invitation, true)
}

// GetPublicBySlug 未发布或已删除与不存在不作区分，公开路径不泄露私有状态
func (s *InvitationServiceImpl) GetPublicBySlug(ctx context.Context, slug string) (*dto.InvitationDTO, error) {
	invitation, err := s.invitationRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if invitation == nil || !invitation.IsPubliclyVisible() {
		return nil, ErrInvitationNotFound
	}
	return s.toInvitationDTO(ctx, invitation, true)
}

func (s *InvitationServiceImpl) Update(ctx context.Context, id uint64, userID uint64, updateDTO *dto.UpdateInvitationDTO) (*dto.InvitationDTO, error) {
	invitation, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if updateDTO.Title != nil {
		invitation.Title = *updateDTO.Title
	}
	if updateDTO.YesMessage != nil {
		invitation.YesMessage = *updateDTO.YesMessage
	}
	if updateDTO.NoMessages != nil {
		invitation.NoMessages = updateDTO.NoMessages
	}
	if updateDTO.IsPublished != nil {
		invitation.IsPublished = *updateDTO.IsPublished
	}
	if updateDTO.Slug != nil {
		slug, err := s.resolveSlug(ctx, userID, invitation.Title, updateDTO.Slug, invitation.ID)
		if err != nil {
			return nil, err
		}
		invitation.Slug = slug
	}

	if err = s.invitationRepo.UpdateInvitation(ctx, invitation); err != nil {
		if repository.IsDuplicateKeyErr(err) {
			return nil, ErrInvitationSlugTaken
		}
		return nil, err
	}

	return s.toInvitationDTO(ctx, invitation, true)
}

func (s *InvitationServiceImpl) Delete(ctx context.Context, id uint64, userID uint64) error {
	invitation, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.invitationRepo.SoftDeleteInvitation(ctx, invitation.ID)
}

// AttachMedia 上限 20 张，重复挂载视为成功
func (s *InvitationServiceImpl) AttachMedia(ctx context.Context, invitationID uint64, userID uint64, mediaID uint64) error {
	invitation, err := s.getOwned(ctx, invitationID, userID)
	if err != nil {
		return err
	}

	if _, err = s.mediaSvc.GetOwned(ctx, mediaID, userID); err != nil {
		return err
	}

	existing, err := s.invitationRepo.GetAttachment(ctx, invitation.ID, mediaID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	count, err := s.invitationRepo.CountAttachedMedia(ctx, invitation.ID)
	if err != nil {
		return err
	}
	if count >= consts.MaxMediaPerInvitation {
		return ErrMediaLimitReached
	}

	return s.invitationRepo.UpsertAttachment(ctx, &model.InvitationMedia{
		InvitationID: invitation.ID,
		MediaID:      mediaID,
	})
}

// DetachMedia 卸载未挂载的媒体同样视为成功
func (s *InvitationServiceImpl) DetachMedia(ctx context.Context, invitationID uint64, mediaID uint64, userID uint64) error {
	invitation, err := s.getOwned(ctx, invitationID, userID)
	if err != nil {
		return err
	}
	return s.invitationRepo.DeleteAttachment(ctx, invitation.ID, mediaID)
}

// resolveSlug 自定义 slug 冲突直接拒绝，自动派生冲突时追加 -1、-2 后缀
func (s *InvitationServiceImpl) resolveSlug(ctx context.Context, userID uint64, base string, supplied *string, excludeID uint64) (string, error) {
	if supplied != nil && *supplied != "" {
		candidate := util.Slugify(*supplied)
		if candidate == "" {
			return "", ErrParamInvalid
		}
		exists, err := s.invitationRepo.SlugExists(ctx, userID, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if exists {
			return "", ErrInvitationSlugTaken
		}
		return candidate, nil
	}

	derived := util.Slugify(base)
	if derived == "" {
		return "", ErrParamInvalid
	}
	candidate := derived
	for counter := 1; ; counter++ {
		exists, err := s.invitationRepo.SlugExists(ctx, userID, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", derived, counter)
	}
}

func (s *InvitationServiceImpl) getOwned(ctx context.Context, id uint64, userID uint64) (*model.Invitation, error) {
	invitation, err := s.invitationRepo.GetInvitationById(ctx, id)
	if err != nil {
		return nil, err
	}
	if invitation == nil {
		return nil, ErrInvitationNotFound
	}
	if invitation.UserID != userID {
		return nil, ErrForbidden
	}
	return invitation, nil
}

func (s *InvitationServiceImpl) toInvitationDTO(ctx context.Context, invitation *model.Invitation, withMedia bool) (*dto.InvitationDTO, error) {
	invitationDTO := &dto.InvitationDTO{}
	if err := copier.Copy(invitationDTO, invitation); err != nil {
		return nil, err
	}
	invitationDTO.NoMessages = invitation.NoMessages

	if invitation.DeletedAt.Valid {
		deletedAt := invitation.DeletedAt.Time
		invitationDTO.DeletedAt = &deletedAt
	} else {
		invitationDTO.DeletedAt = nil
	}

	if withMedia {
		medias, err := s.invitationRepo.ListAttachedMedia(ctx, invitation.ID)
		if err != nil {
			return nil, err
		}
		result := make([]dto.MediaDTO, 0, len(medias))
		for _, media := range medias {
			mediaDTO, err := toMediaDTO(media)
			if err != nil {
				return nil, err
			}
			result = append(result, *mediaDTO)
		}
		invitationDTO.Media = result
	}

	return invitationDTO, nil
}
