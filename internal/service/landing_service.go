package service

import (
	"context"
	"fmt"
	"time"

	"uspage/internal/api/config"
	"uspage/internal/api/dto"
	"uspage/internal/model"
	"uspage/internal/pkg/util"
	"uspage/internal/repository"

	"github.com/jinzhu/copier"
)

const anniversaryLayout = "2006-01-02"

type LandingService interface {
	List(ctx context.Context, userID uint64) ([]*dto.LandingDTO, error)
	Create(ctx context.Context, userID uint64, dto *dto.CreateLandingDTO) (*dto.LandingDTO, error)
	GetOwned(ctx context.Context, id uint64, userID uint64) (*dto.LandingDTO, error)
	GetPublicBySlug(ctx context.Context, slug string) (*dto.LandingDTO, error)
	Update(ctx context.Context, id uint64, userID uint64, dto *dto.UpdateLandingDTO) (*dto.LandingDTO, error)
	Delete(ctx context.Context, id uint64, userID uint64) error

	AttachMedia(ctx context.Context, landingID uint64, userID uint64, dto *dto.AttachMediaDTO) error
	DetachMedia(ctx context.Context, landingID uint64, mediaID uint64, userID uint64) error
	ReorderMedia(ctx context.Context, landingID uint64, userID uint64, dto *dto.ReorderDTO) error
}

type LandingServiceImpl struct {
	landingRepo repository.LandingRepo
	themeRepo   repository.ThemeRepo
	mediaSvc    MediaService
}

func NewLandingService(landingRepo repository.LandingRepo, themeRepo repository.ThemeRepo, mediaSvc MediaService) LandingService {
	return &LandingServiceImpl{
		landingRepo: landingRepo,
		themeRepo:   themeRepo,
		mediaSvc:    mediaSvc,
	}
}

func (s *LandingServiceImpl) List(ctx context.Context, userID uint64) ([]*dto.LandingDTO, error) {
	landings, err := s.landingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.LandingDTO, 0, len(landings))
	for _, landing := range landings {
		landingDTO, err := s.toLandingDTO(ctx, landing, false)
		if err != nil {
			return nil, err
		}
		result = append(result, landingDTO)
	}
	return result, nil
}

func (s *LandingServiceImpl) Create(ctx context.Context, userID uint64, createDTO *dto.CreateLandingDTO) (*dto.LandingDTO, error) {
	if err := s.checkThemeAccessible(ctx, createDTO.ThemeID, userID); err != nil {
		return nil, err
	}

	anniversary, err := time.Parse(anniversaryLayout, createDTO.AnniversaryDate)
	if err != nil {
		return nil, ErrParamInvalid
	}

	slug, err := s.resolveSlug(ctx, userID, createDTO.CoupleNames, createDTO.Slug, 0)
	if err != nil {
		return nil, err
	}

	landing := &model.Landing{
		UserID:          userID,
		ThemeID:         createDTO.ThemeID,
		Slug:            slug,
		CoupleNames:     createDTO.CoupleNames,
		AnniversaryDate: anniversary,
		BioText:         createDTO.BioText,
		IsPublished:     true,
	}
	if createDTO.IsPublished != nil {
		landing.IsPublished = *createDTO.IsPublished
	}

	if err = s.landingRepo.CreateLanding(ctx, landing); err != nil {
		// 唯一索引是并发下的最终裁决
		if repository.IsDuplicateKeyErr(err) {
			return nil, ErrLandingSlugTaken
		}
		return nil, err
	}

	return s.toLandingDTO(ctx, landing, true)
}

func (s *LandingServiceImpl) GetOwned(ctx context.Context, id uint64, userID uint64) (*dto.LandingDTO, error) {
	landing, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return s.toLandingDTO(ctx, landing, true)
}

// GetPublicBySlug 未发布或已删除与不存在不作区分，公开路径不泄露私有状态
func (s *LandingServiceImpl) GetPublicBySlug(ctx context.Context, slug string) (*dto.LandingDTO, error) {
	landing, err := s.landingRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if landing == nil {
		return nil, ErrLandingNotFound
	}
	return s.toLandingDTO(ctx, landing, true)
}

func (s *LandingServiceImpl) Update(ctx context.Context, id uint64, userID uint64, updateDTO *dto.UpdateLandingDTO) (*dto.LandingDTO, error) {
	landing, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if updateDTO.ThemeID != nil {
		if err = s.checkThemeAccessible(ctx, *updateDTO.ThemeID, userID); err != nil {
			return nil, err
		}
		landing.ThemeID = *updateDTO.ThemeID
	}
	if updateDTO.CoupleNames != nil {
		landing.CoupleNames = *updateDTO.CoupleNames
	}
	if updateDTO.AnniversaryDate != nil {
		anniversary, err := time.Parse(anniversaryLayout, *updateDTO.AnniversaryDate)
		if err != nil {
			return nil, ErrParamInvalid
		}
		landing.AnniversaryDate = anniversary
	}
	if updateDTO.BioText != nil {
		landing.BioText = updateDTO.BioText
	}
	if updateDTO.IsPublished != nil {
		landing.IsPublished = *updateDTO.IsPublished
	}
	if updateDTO.Slug != nil {
		slug, err := s.resolveSlug(ctx, userID, landing.CoupleNames, updateDTO.Slug, landing.ID)
		if err != nil {
			return nil, err
		}
		landing.Slug = slug
	}

	landing.Theme = nil
	if err = s.landingRepo.UpdateLanding(ctx, landing); err != nil {
		if repository.IsDuplicateKeyErr(err) {
			return nil, ErrLandingSlugTaken
		}
		return nil, err
	}

	return s.toLandingDTO(ctx, landing, true)
}

func (s *LandingServiceImpl) Delete(ctx context.Context, id uint64, userID uint64) error {
	landing, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.landingRepo.SoftDeleteLanding(ctx, landing.ID)
}

// AttachMedia 重复挂载仅更新排序值，缺省排序取当前最大值加一
func (s *LandingServiceImpl) AttachMedia(ctx context.Context, landingID uint64, userID uint64, attachDTO *dto.AttachMediaDTO) error {
	landing, err := s.getOwned(ctx, landingID, userID)
	if err != nil {
		return err
	}

	if _, err = s.mediaSvc.GetOwned(ctx, attachDTO.MediaID, userID); err != nil {
		return err
	}

	existing, err := s.landingRepo.GetAttachment(ctx, landing.ID, attachDTO.MediaID)
	if err != nil {
		return err
	}

	if existing == nil {
		count, err := s.landingRepo.CountAttachedMedia(ctx, landing.ID)
		if err != nil {
			return err
		}
		if count >= int64(config.Cfg.Uploads.MaxMediaPerLanding) {
			return ErrMediaLimitReached
		}
	}

	sortOrder := 0
	if attachDTO.SortOrder != nil {
		sortOrder = *attachDTO.SortOrder
	} else {
		max, err := s.landingRepo.MaxSortOrder(ctx, landing.ID)
		if err != nil {
			return err
		}
		sortOrder = max + 1
	}

	return s.landingRepo.UpsertAttachment(ctx, &model.LandingMedia{
		LandingID: landing.ID,
		MediaID:   attachDTO.MediaID,
		SortOrder: sortOrder,
	})
}

// DetachMedia 卸载未挂载的媒体同样视为成功
func (s *LandingServiceImpl) DetachMedia(ctx context.Context, landingID uint64, mediaID uint64, userID uint64) error {
	landing, err := s.getOwned(ctx, landingID, userID)
	if err != nil {
		return err
	}
	return s.landingRepo.DeleteAttachment(ctx, landing.ID, mediaID)
}

// ReorderMedia 批量改排序，名单中任何未挂载的媒体都会整体拒绝
func (s *LandingServiceImpl) ReorderMedia(ctx context.Context, landingID uint64, userID uint64, reorderDTO *dto.ReorderDTO) error {
	landing, err := s.getOwned(ctx, landingID, userID)
	if err != nil {
		return err
	}

	for _, item := range reorderDTO.Items {
		attachment, err := s.landingRepo.GetAttachment(ctx, landing.ID, item.MediaID)
		if err != nil {
			return err
		}
		if attachment == nil {
			return ErrParamInvalid
		}
	}

	for _, item := range reorderDTO.Items {
		err := s.landingRepo.UpsertAttachment(ctx, &model.LandingMedia{
			LandingID: landing.ID,
			MediaID:   item.MediaID,
			SortOrder: item.SortOrder,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// resolveSlug 自定义 slug 冲突直接拒绝，自动派生冲突时追加 -1、-2 后缀
// 此处的存在性检查仅用于提示，最终以唯一索引为准
func (s *LandingServiceImpl) resolveSlug(ctx context.Context, userID uint64, base string, supplied *string, excludeID uint64) (string, error) {
	if supplied != nil && *supplied != "" {
		candidate := util.Slugify(*supplied)
		if candidate == "" {
			return "", ErrParamInvalid
		}
		exists, err := s.landingRepo.SlugExists(ctx, userID, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if exists {
			return "", ErrLandingSlugTaken
		}
		return candidate, nil
	}

	derived := util.Slugify(base)
	if derived == "" {
		return "", ErrParamInvalid
	}
	candidate := derived
	for counter := 1; ; counter++ {
		exists, err := s.landingRepo.SlugExists(ctx, userID, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", derived, counter)
	}
}

func (s *LandingServiceImpl) checkThemeAccessible(ctx context.Context, themeID uint64, userID uint64) error {
	theme, err := s.themeRepo.GetThemeById(ctx, themeID)
	if err != nil {
		return err
	}
	if theme == nil {
		return ErrParamInvalid
	}
	if !theme.IsSystem() && *theme.UserID != userID {
		return ErrParamInvalid
	}
	return nil
}

func (s *LandingServiceImpl) getOwned(ctx context.Context, id uint64, userID uint64) (*model.Landing, error) {
	landing, err := s.landingRepo.GetLandingById(ctx, id)
	if err != nil {
		return nil, err
	}
	if landing == nil {
		return nil, ErrLandingNotFound
	}
	if landing.UserID != userID {
		return nil, ErrForbidden
	}
	return landing, nil
}

func (s *LandingServiceImpl) toLandingDTO(ctx context.Context, landing *model.Landing, withMedia bool) (*dto.LandingDTO, error) {
	landingDTO := &dto.LandingDTO{}
	if err := copier.Copy(landingDTO, landing); err != nil {
		return nil, err
	}
	landingDTO.AnniversaryDate = landing.AnniversaryDate.Format(anniversaryLayout)

	if landing.DeletedAt.Valid {
		deletedAt := landing.DeletedAt.Time
		landingDTO.DeletedAt = &deletedAt
	} else {
		landingDTO.DeletedAt = nil
	}

	if landing.Theme != nil {
		themeDTO, err := toThemeDTO(landing.Theme)
		if err != nil {
			return nil, err
		}
		landingDTO.Theme = themeDTO
	}

	if withMedia {
		attached, err := s.landingRepo.ListAttachedMedia(ctx, landing.ID)
		if err != nil {
			return nil, err
		}
		medias := make([]dto.AttachedMediaDTO, 0, len(attached))
		for _, item := range attached {
			mediaDTO, err := toMediaDTO(&item.Media)
			if err != nil {
				return nil, err
			}
			medias = append(medias, dto.AttachedMediaDTO{
				MediaDTO:  *mediaDTO,
				SortOrder: item.SortOrder,
			})
		}
		landingDTO.Media = medias
	}

	return landingDTO, nil
}
