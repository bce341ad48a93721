package job

import (
	"context"
	log "log/slog"
	"strconv"
	"time"

	"uspage/internal/pkg/minio"
	"uspage/internal/pkg/redis"
	"uspage/internal/repository"
)

// MediaCleanupJob 清理已写入对象存储但最终未落库的孤儿对象
// 删除前按路径查一次媒体行，落库成功但未解除登记的对象只清登记不删文件
type MediaCleanupJob struct {
	mediaRepo repository.MediaRepo
}

func NewMediaCleanupJob(mediaRepo repository.MediaRepo) *MediaCleanupJob {
	return &MediaCleanupJob{mediaRepo: mediaRepo}
}

func (s *MediaCleanupJob) Run() {
	ctx := context.Background()
	log.Info("start media cleanup job")

	pending, err := redis.ListPendingUploads(ctx)
	if err != nil {
		log.Error("failed to list pending uploads", "err", err)
		return
	}

	now := time.Now().Unix()
	expiration := int64(24 * 60 * 60)
	count := 0

	for objectName, val := range pending {
		createdAt, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			log.Warn("invalid pending upload timestamp", "objectName", objectName)
			continue
		}

		if now-createdAt > expiration {
			media, err := s.mediaRepo.GetMediaByPath(ctx, objectName)
			if err != nil {
				log.Error("failed to look up media row for pending object", "objectName", objectName, "err", err)
				continue
			}
			if media != nil {
				// 行已落库，对象不是孤儿，仅解除登记
				if err = redis.RemovePendingUpload(ctx, objectName); err != nil {
					log.Error("failed to remove pending upload entry", "objectName", objectName, "err", err)
				}
				continue
			}

			if err = minio.DeleteFile(ctx, objectName); err != nil {
				log.Error("failed to delete orphan object from minio", "objectName", objectName, "err", err)
				continue
			}

			if err = redis.RemovePendingUpload(ctx, objectName); err != nil {
				log.Error("failed to remove pending upload entry", "objectName", objectName, "err", err)
			}

			count++
			log.Info("cleanup orphan media object", "objectName", objectName)
		}
	}

	if count > 0 {
		log.Info("media cleanup job finished", "cleaned_count", count)
	}
}
