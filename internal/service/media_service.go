package service

import (
	"bytes"
	"context"
	"io"
	log "log/slog"
	"mime/multipart"
	"slices"

	"uspage/internal/api/config"
	"uspage/internal/api/dto"
	"uspage/internal/model"
	"uspage/internal/pkg/minio"
	"uspage/internal/pkg/redis"
	"uspage/internal/pkg/util"
	"uspage/internal/repository"

	"github.com/jinzhu/copier"
)

type MediaService interface {
	Upload(ctx context.Context, userID uint64, fileHeader *multipart.FileHeader) (*dto.MediaDTO, error)
	List(ctx context.Context, userID uint64) ([]*dto.MediaDTO, error)
	Delete(ctx context.Context, id uint64, userID uint64) error
	ForceDelete(ctx context.Context, id uint64) error
	GetOwned(ctx context.Context, id uint64, userID uint64) (*model.Media, error)
}

type MediaServiceImpl struct {
	mediaRepo repository.MediaRepo
}

func NewMediaService(mediaRepo repository.MediaRepo) MediaService {
	return &MediaServiceImpl{mediaRepo: mediaRepo}
}

// Upload 先写对象存储再插库，写入成功即登记待清理，落库后解除登记
// 落库失败的孤儿对象由定时任务回收
func (s *MediaServiceImpl) Upload(ctx context.Context, userID uint64, fileHeader *multipart.FileHeader) (*dto.MediaDTO, error) {
	cfg := config.Cfg.Uploads
	maxSize := int64(cfg.MaxFileSizeMB) * 1024 * 1024
	if fileHeader.Size > maxSize {
		return nil, ErrMediaTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	contentType, _, err := util.SniffContentType(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if !slices.Contains(cfg.AllowedMime, contentType) {
		return nil, ErrMediaNotImage
	}

	width, height, err := util.DecodeImageSize(data)
	if err != nil {
		return nil, ErrMediaNotImage
	}

	objectName := util.BuildObjectName(userID, fileHeader.Filename)

	if _, err = minio.UploadFile(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return nil, err
	}
	if err = redis.AddPendingUpload(ctx, objectName); err != nil {
		log.WarnContext(ctx, "failed to register pending upload", "objectName", objectName, "err", err)
	}

	media := &model.Media{
		UserID:   userID,
		Filename: fileHeader.Filename,
		Path:     objectName,
		URL:      minio.GetPublicURL(objectName),
		MimeType: contentType,
		Size:     int64(len(data)),
		Width:    width,
		Height:   height,
	}

	if err = s.mediaRepo.CreateMedia(ctx, media); err != nil {
		return nil, err
	}

	if err = redis.RemovePendingUpload(ctx, objectName); err != nil {
		log.WarnContext(ctx, "failed to clear pending upload", "objectName", objectName, "err", err)
	}

	return toMediaDTO(media)
}

func (s *MediaServiceImpl) List(ctx context.Context, userID uint64) ([]*dto.MediaDTO, error) {
	medias, err := s.mediaRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.MediaDTO, 0, len(medias))
	for _, media := range medias {
		mediaDTO, err := toMediaDTO(media)
		if err != nil {
			return nil, err
		}
		result = append(result, mediaDTO)
	}
	return result, nil
}

// Delete 不存在、非本人、仍被引用三种情况一律视为不可删除
func (s *MediaServiceImpl) Delete(ctx context.Context, id uint64, userID uint64) error {
	media, err := s.mediaRepo.GetMediaById(ctx, id)
	if err != nil {
		return err
	}
	if media == nil || media.UserID != userID {
		return ErrMediaNotDeletable
	}

	refs, err := s.mediaRepo.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrMediaNotDeletable
	}

	return s.removeMedia(ctx, media)
}

// ForceDelete 跳过归属与引用检查，仅供主题级联清理背景图使用
func (s *MediaServiceImpl) ForceDelete(ctx context.Context, id uint64) error {
	media, err := s.mediaRepo.GetMediaById(ctx, id)
	if err != nil {
		return err
	}
	if media == nil {
		return nil
	}
	return s.removeMedia(ctx, media)
}

// removeMedia 对象缺失不阻塞行删除
func (s *MediaServiceImpl) removeMedia(ctx context.Context, media *model.Media) error {
	if err := minio.DeleteFile(ctx, media.Path); err != nil {
		if !minio.IsNotExist(err) {
			log.WarnContext(ctx, "failed to delete media object", "path", media.Path, "err", err)
		}
	}
	return s.mediaRepo.DeleteMedia(ctx, media.ID)
}

// GetOwned 获取必须属于指定用户的媒体，跨用户引用一律视为参数错误
func (s *MediaServiceImpl) GetOwned(ctx context.Context, id uint64, userID uint64) (*model.Media, error) {
	media, err := s.mediaRepo.GetMediaById(ctx, id)
	if err != nil {
		return nil, err
	}
	if media == nil || media.UserID != userID {
		return nil, ErrParamInvalid
	}
	return media, nil
}

func toMediaDTO(media *model.Media) (*dto.MediaDTO, error) {
	mediaDTO := &dto.MediaDTO{}
	if err := copier.Copy(mediaDTO, media); err != nil {
		return nil, err
	}
	return mediaDTO, nil
}
