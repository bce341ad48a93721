package service

import (
	"context"
	"mime/multipart"

	"uspage/internal/api/dto"
	"uspage/internal/model"
	"uspage/internal/pkg/util"
	"uspage/internal/repository"

	"github.com/jinzhu/copier"
)

type ThemeService interface {
	List(ctx context.Context, userID uint64) ([]*dto.ThemeDTO, error)
	Get(ctx context.Context, id uint64, userID uint64) (*dto.ThemeDTO, error)
	Create(ctx context.Context, userID uint64, dto *dto.CreateThemeDTO, bgFile *multipart.FileHeader) (*dto.ThemeDTO, error)
	Update(ctx context.Context, id uint64, userID uint64, dto *dto.UpdateThemeDTO, bgFile *multipart.FileHeader) (*dto.ThemeDTO, error)
	Delete(ctx context.Context, id uint64, userID uint64) error
}

type ThemeServiceImpl struct {
	themeRepo repository.ThemeRepo
	mediaSvc  MediaService
}

func NewThemeService(themeRepo repository.ThemeRepo, mediaSvc MediaService) ThemeService {
	return &ThemeServiceImpl{
		themeRepo: themeRepo,
		mediaSvc:  mediaSvc,
	}
}

func (s *ThemeServiceImpl) List(ctx context.Context, userID uint64) ([]*dto.ThemeDTO, error) {
	themes, err := s.themeRepo.ListAccessible(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ThemeDTO, 0, len(themes))
	for _, theme := range themes {
		themeDTO, err := toThemeDTO(theme)
		if err != nil {
			return nil, err
		}
		result = append(result, themeDTO)
	}
	return result, nil
}

func (s *ThemeServiceImpl) Get(ctx context.Context, id uint64, userID uint64) (*dto.ThemeDTO, error) {
	theme, err := s.getAccessible(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return toThemeDTO(theme)
}

func (s *ThemeServiceImpl) Create(ctx context.Context, userID uint64, createDTO *dto.CreateThemeDTO, bgFile *multipart.FileHeader) (*dto.ThemeDTO, error) {
	theme := &model.Theme{
		UserID: &userID,
		Name:   createDTO.Name,
	}
	if createDTO.Description != nil {
		theme.Description = createDTO.Description
	}
	if createDTO.PrimaryColor != nil {
		theme.PrimaryColor = *createDTO.PrimaryColor
	}
	if createDTO.SecondaryColor != nil {
		theme.SecondaryColor = *createDTO.SecondaryColor
	}
	if createDTO.BgColor != nil {
		theme.BgColor = *createDTO.BgColor
	}
	if createDTO.CssClass != nil {
		theme.CssClass = *createDTO.CssClass
	}

	if bgFile != nil {
		media, err := s.mediaSvc.Upload(ctx, userID, bgFile)
		if err != nil {
			return nil, err
		}
		theme.BgImageMediaID = &media.ID
		theme.BgImageURL = &media.URL
	} else if createDTO.BgImageMediaID != nil {
		media, err := s.mediaSvc.GetOwned(ctx, *createDTO.BgImageMediaID, userID)
		if err != nil {
			return nil, err
		}
		theme.BgImageMediaID = &media.ID
		theme.BgImageURL = &media.URL
	}

	if err := s.themeRepo.CreateTheme(ctx, theme); err != nil {
		return nil, err
	}
	return toThemeDTO(theme)
}

func (s *ThemeServiceImpl) Update(ctx context.Context, id uint64, userID uint64, updateDTO *dto.UpdateThemeDTO, bgFile *multipart.FileHeader) (*dto.ThemeDTO, error) {
	theme, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if updateDTO.Name != nil {
		theme.Name = *updateDTO.Name
	}
	if updateDTO.Description != nil {
		theme.Description = updateDTO.Description
	}
	if updateDTO.PrimaryColor != nil {
		theme.PrimaryColor = *updateDTO.PrimaryColor
	}
	if updateDTO.SecondaryColor != nil {
		theme.SecondaryColor = *updateDTO.SecondaryColor
	}
	if updateDTO.BgColor != nil {
		theme.BgColor = *updateDTO.BgColor
	}
	if updateDTO.CssClass != nil {
		theme.CssClass = *updateDTO.CssClass
	}

	if err = s.applyBgImage(ctx, theme, userID, updateDTO.BgImageMediaID, bgFile); err != nil {
		return nil, err
	}

	if err = s.themeRepo.UpdateTheme(ctx, theme); err != nil {
		return nil, err
	}
	return toThemeDTO(theme)
}

// applyBgImage 背景图状态迁移
// 新文件上传 > 引用媒体 id > 空串清除 > 字段缺省不动
// 先校验并落实新背景再级联强删旧背景，替换被拒绝时旧背景原样保留
func (s *ThemeServiceImpl) applyBgImage(ctx context.Context, theme *model.Theme, userID uint64, mediaIDField *string, bgFile *multipart.FileHeader) error {
	if bgFile != nil {
		media, err := s.mediaSvc.Upload(ctx, userID, bgFile)
		if err != nil {
			return err
		}
		if err = s.dropCurrentBgImage(ctx, theme); err != nil {
			return err
		}
		theme.BgImageMediaID = &media.ID
		theme.BgImageURL = &media.URL
		return nil
	}

	if mediaIDField == nil {
		return nil
	}

	if *mediaIDField == "" {
		return s.dropCurrentBgImage(ctx, theme)
	}

	mediaID := util.StrToUint64(*mediaIDField)
	if mediaID == 0 {
		return ErrParamInvalid
	}
	if theme.BgImageMediaID != nil && *theme.BgImageMediaID == mediaID {
		return nil
	}

	media, err := s.mediaSvc.GetOwned(ctx, mediaID, userID)
	if err != nil {
		return err
	}
	if err = s.dropCurrentBgImage(ctx, theme); err != nil {
		return err
	}
	theme.BgImageMediaID = &media.ID
	theme.BgImageURL = &media.URL
	return nil
}

func (s *ThemeServiceImpl) dropCurrentBgImage(ctx context.Context, theme *model.Theme) error {
	if theme.BgImageMediaID == nil {
		return nil
	}
	if err := s.mediaSvc.ForceDelete(ctx, *theme.BgImageMediaID); err != nil {
		return err
	}
	theme.BgImageMediaID = nil
	theme.BgImageURL = nil
	return nil
}

// Delete 先级联清理背景图再删主题行，两步之间无事务
func (s *ThemeServiceImpl) Delete(ctx context.Context, id uint64, userID uint64) error {
	theme, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}

	inUse, err := s.themeRepo.CountLandingsUsingTheme(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return ErrThemeInUse
	}

	if err = s.dropCurrentBgImage(ctx, theme); err != nil {
		return err
	}

	return s.themeRepo.DeleteTheme(ctx, id)
}

func (s *ThemeServiceImpl) getAccessible(ctx context.Context, id uint64, userID uint64) (*model.Theme, error) {
	theme, err := s.themeRepo.GetThemeById(ctx, id)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, ErrThemeNotFound
	}
	if !theme.IsSystem() && *theme.UserID != userID {
		return nil, ErrForbidden
	}
	return theme, nil
}

// getOwned 系统主题对任何用户都不可变更
func (s *ThemeServiceImpl) getOwned(ctx context.Context, id uint64, userID uint64) (*model.Theme, error) {
	theme, err := s.themeRepo.GetThemeById(ctx, id)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, ErrThemeNotFound
	}
	if theme.IsSystem() {
		return nil, ErrThemeSystem
	}
	if *theme.UserID != userID {
		return nil, ErrForbidden
	}
	return theme, nil
}

func toThemeDTO(theme *model.Theme) (*dto.ThemeDTO, error) {
	themeDTO := &dto.ThemeDTO{}
	if err := copier.Copy(themeDTO, theme); err != nil {
		return nil, err
	}
	themeDTO.IsSystem = theme.IsSystem()
	return themeDTO, nil
}
