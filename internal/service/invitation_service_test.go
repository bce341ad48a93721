package service

import (
	"context"
	"testing"

	"uspage/internal/api/dto"
	"uspage/internal/model"
	"uspage/internal/pkg/consts"
	"uspage/internal/pkg/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvitationCreateDefaults(t *testing.T) {
	repo := newFakeInvitationRepo()
	svc := NewInvitationService(repo, newFakeMediaService())

	result, err := svc.Create(context.Background(), 1, &dto.CreateInvitationDTO{})
	require.NoError(t, err)

	assert.Equal(t, "¿Quieres ser mi San Valentín?", result.Title)
	assert.Equal(t, "quieres-ser-mi-san-valentin", result.Slug)
	assert.Equal(t, "Sí", result.YesMessage)
	assert.Equal(t, []string{"No", "Tal vez", "No te arrepentirás", "Piénsalo mejor"}, result.NoMessages)
	assert.False(t, result.IsPublished)
}

func TestInvitationSlugSuffixOnDerivedCollision(t *testing.T) {
	repo := newFakeInvitationRepo()
	svc := NewInvitationService(repo, newFakeMediaService())
	ctx := context.Background()

	first, err := svc.Create(ctx, 1, &dto.CreateInvitationDTO{})
	require.NoError(t, err)
	second, err := svc.Create(ctx, 1, &dto.CreateInvitationDTO{})
	require.NoError(t, err)
	third, err := svc.Create(ctx, 1, &dto.CreateInvitationDTO{})
	require.NoError(t, err)

	assert.Equal(t, "quieres-ser-mi-san-valentin", first.Slug)
	assert.Equal(t, "quieres-ser-mi-san-valentin-1", second.Slug)
	assert.Equal(t, "quieres-ser-mi-san-valentin-2", third.Slug)
}

func TestInvitationSlugPerUserScope(t *testing.T) {
	repo := newFakeInvitationRepo()
	svc := NewInvitationService(repo, newFakeMediaService())
	ctx := context.Background()

	mine, err := svc.Create(ctx, 1, &dto.CreateInvitationDTO{})
	require.NoError(t, err)
	theirs, err := svc.Create(ctx, 2, &dto.CreateInvitationDTO{})
	require.NoError(t, err)

	// 不同用户可以占用相同 slug
	assert.Equal(t, mine.Slug, theirs.Slug)
}

func TestInvitationSuppliedSlugCollisionRejected(t *testing.T) {
	repo := newFakeInvitationRepo()
	svc := NewInvitationService(repo, newFakeMediaService())
	ctx := context.Background()

	slug := "mi-slug"
	_, err := svc.Create(ctx, 1, &dto.CreateInvitationDTO{Slug: &slug})
	require.NoError(t, err)

	_, err = svc.Create(ctx, 1, &dto.CreateInvitationDTO{Slug: &slug})
	assert.ErrorIs(t, err, ErrInvitationSlugTaken)
}

func TestInvitationUpdateSlugExcludesSelf(t *testing.T) {
	repo := newFakeInvitationRepo()
	svc := NewInvitationService(repo, newFakeMediaService())
	ctx := context.Background()

	slug := "nuestro-dia"
	created, err := svc.Create(ctx, 1, &dto.CreateInvitationDTO{Slug: &slug})
	require.NoError(t, err)

	// 用自己当前的 slug 更新自己不算冲突
	updated, err := svc.Update(ctx, created.ID, 1, &dto.UpdateInvitationDTO{Slug: &slug})
	require.NoError(t, err)
	assert.Equal(t, "nuestro-dia", updated.Slug)
}

func TestInvitationPublicLookup(t *testing.T) {
	repo := newFakeInvitationRepo()
	svc := NewInvitationService(repo, newFakeMediaService())
	ctx := context.Background()

	published := true
	created, err := svc.Create(ctx, 1, &dto.CreateInvitationDTO{IsPublished: &published})
	require.NoError(t, err)

	found, err := svc.GetPublicBySlug(ctx, created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// 软删除后公开路径返回未找到
	require.NoError(t, svc.Delete(ctx, created.ID, 1))
	_, err = svc.GetPublicBySlug(ctx, created.Slug)
	assert.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestInvitationUnpublishedHiddenFromPublic(t *testing.T) {
	repo := newFakeInvitationRepo()
	svc := NewInvitationService(repo, newFakeMediaService())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &dto.CreateInvitationDTO{})
	require.NoError(t, err)

	_, err = svc.GetPublicBySlug(ctx, created.Slug)
	assert.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestInvitationOwnershipChecks(t *testing.T) {
	repo := newFakeInvitationRepo()
	svc := NewInvitationService(repo, newFakeMediaService())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &dto.CreateInvitationDTO{})
	require.NoError(t, err)

	_, err = svc.GetOwned(ctx, created.ID, 2)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(ctx, created.ID, 2)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetOwned(ctx, 999, 1)
	assert.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestInvitationAttachLimit(t *testing.T) {
	repo := newFakeInvitationRepo()
	mediaSvc := newFakeMediaService()
	svc := NewInvitationService(repo, mediaSvc)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &dto.CreateInvitationDTO{})
	require.NoError(t, err)

	for i := uint64(1); i <= consts.MaxMediaPerInvitation; i++ {
		mediaSvc.medias[i] = &model.Media{ID: i, UserID: 1}
		require.NoError(t, svc.AttachMedia(ctx, created.ID, 1, i))
	}

	overflowID := uint64(consts.MaxMediaPerInvitation + 1)
	mediaSvc.medias[overflowID] = &model.Media{ID: overflowID, UserID: 1}
	err = svc.AttachMedia(ctx, created.ID, 1, overflowID)
	assert.ErrorIs(t, err, ErrMediaLimitReached)
}

func TestInvitationAttachIdempotent(t *testing.T) {
	repo := newFakeInvitationRepo()
	mediaSvc := newFakeMediaService()
	svc := NewInvitationService(repo, mediaSvc)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &dto.CreateInvitationDTO{})
	require.NoError(t, err)

	mediaSvc.medias[7] = &model.Media{ID: 7, UserID: 1}
	require.NoError(t, svc.AttachMedia(ctx, created.ID, 1, 7))
	// 重复挂载依然成功
	require.NoError(t, svc.AttachMedia(ctx, created.ID, 1, 7))

	count, err := repo.CountAttachedMedia(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// 卸载两次也都成功
	require.NoError(t, svc.DetachMedia(ctx, created.ID, 7, 1))
	require.NoError(t, svc.DetachMedia(ctx, created.ID, 7, 1))
}

func TestInvitationAttachCrossUserMediaRejected(t *testing.T) {
	repo := newFakeInvitationRepo()
	mediaSvc := newFakeMediaService()
	svc := NewInvitationService(repo, mediaSvc)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &dto.CreateInvitationDTO{})
	require.NoError(t, err)

	mediaSvc.medias[9] = &model.Media{ID: 9, UserID: 2}
	err = svc.AttachMedia(ctx, created.ID, 1, 9)
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestInvitationDefaultTitleSlugifies(t *testing.T) {
	assert.Equal(t, "quieres-ser-mi-san-valentin", util.Slugify(DefaultInvitationTitle))
}
