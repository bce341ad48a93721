package service

import (
	"context"
	"testing"

	"uspage/internal/api/config"
	"uspage/internal/api/dto"
	"uspage/internal/model"
	"uspage/internal/pkg/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLandingService(t *testing.T) (LandingService, *fakeLandingRepo, *fakeThemeRepo, *fakeMediaService) {
	t.Helper()
	config.Cfg = &config.Config{
		Uploads: config.UploadsConfig{
			MaxFileSizeMB:      10,
			AllowedMime:        []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
			MaxMediaPerLanding: 3,
		},
	}

	landingRepo := newFakeLandingRepo()
	themeRepo := newFakeThemeRepo()
	mediaSvc := newFakeMediaService()

	// 系统主题，任何用户都可引用
	require.NoError(t, themeRepo.CreateTheme(context.Background(), &model.Theme{Name: "Romántico"}))

	return NewLandingService(landingRepo, themeRepo, mediaSvc), landingRepo, themeRepo, mediaSvc
}

func landingInput() *dto.CreateLandingDTO {
	return &dto.CreateLandingDTO{
		ThemeID:         1,
		CoupleNames:     "Ana y Luis",
		AnniversaryDate: "2024-02-14",
	}
}

func TestLandingCreateDerivesSlug(t *testing.T) {
	svc, _, _, _ := setupLandingService(t)

	result, err := svc.Create(context.Background(), 1, landingInput())
	require.NoError(t, err)

	assert.Equal(t, "ana-y-luis", result.Slug)
	assert.True(t, result.IsPublished)
	assert.Equal(t, "2024-02-14", result.AnniversaryDate)
}

func TestLandingSlugSuffixing(t *testing.T) {
	svc, _, _, _ := setupLandingService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, 1, landingInput())
	require.NoError(t, err)
	second, err := svc.Create(ctx, 1, landingInput())
	require.NoError(t, err)

	assert.Equal(t, "ana-y-luis", first.Slug)
	assert.Equal(t, "ana-y-luis-1", second.Slug)
}

func TestLandingSuppliedSlugCollisionRejected(t *testing.T) {
	svc, _, _, _ := setupLandingService(t)
	ctx := context.Background()

	input := landingInput()
	slug := "nuestro-aniversario"
	input.Slug = &slug
	_, err := svc.Create(ctx, 1, input)
	require.NoError(t, err)

	again := landingInput()
	again.Slug = &slug
	_, err = svc.Create(ctx, 1, again)
	assert.ErrorIs(t, err, ErrLandingSlugTaken)
}

func TestLandingSuppliedSlugIsSlugified(t *testing.T) {
	svc, _, _, _ := setupLandingService(t)

	input := landingInput()
	slug := "¿Nuestro Día?"
	input.Slug = &slug
	result, err := svc.Create(context.Background(), 1, input)
	require.NoError(t, err)

	assert.Equal(t, util.Slugify(slug), result.Slug)
	assert.Equal(t, "nuestro-dia", result.Slug)
}

func TestLandingCreateRejectsForeignTheme(t *testing.T) {
	svc, _, themeRepo, _ := setupLandingService(t)
	ctx := context.Background()

	otherUser := uint64(2)
	require.NoError(t, themeRepo.CreateTheme(ctx, &model.Theme{Name: "Privado", UserID: &otherUser}))

	input := landingInput()
	input.ThemeID = 2
	_, err := svc.Create(ctx, 1, input)
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestLandingPublicVsOwnerRead(t *testing.T) {
	svc, _, _, _ := setupLandingService(t)
	ctx := context.Background()

	unpublished := false
	input := landingInput()
	input.IsPublished = &unpublished
	created, err := svc.Create(ctx, 1, input)
	require.NoError(t, err)

	// 属主按 id 能读到未发布的页面
	owned, err := svc.GetOwned(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, owned.ID)

	// 公开路径对未发布页面一律未找到
	_, err = svc.GetPublicBySlug(ctx, created.Slug)
	assert.ErrorIs(t, err, ErrLandingNotFound)

	// 其他用户按 id 读取被拒
	_, err = svc.GetOwned(ctx, created.ID, 2)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestLandingAttachDefaultSortOrder(t *testing.T) {
	svc, landingRepo, _, mediaSvc := setupLandingService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, landingInput())
	require.NoError(t, err)

	mediaSvc.medias[1] = &model.Media{ID: 1, UserID: 1}
	mediaSvc.medias[2] = &model.Media{ID: 2, UserID: 1}

	explicit := 5
	require.NoError(t, svc.AttachMedia(ctx, created.ID, 1, &dto.AttachMediaDTO{MediaID: 1, SortOrder: &explicit}))
	// 缺省排序取当前最大值加一
	require.NoError(t, svc.AttachMedia(ctx, created.ID, 1, &dto.AttachMediaDTO{MediaID: 2}))

	attachment, err := landingRepo.GetAttachment(ctx, created.ID, 2)
	require.NoError(t, err)
	require.NotNil(t, attachment)
	assert.Equal(t, 6, attachment.SortOrder)
}

func TestLandingReattachUpdatesSortOrder(t *testing.T) {
	svc, landingRepo, _, mediaSvc := setupLandingService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, landingInput())
	require.NoError(t, err)

	mediaSvc.medias[1] = &model.Media{ID: 1, UserID: 1}
	first := 1
	require.NoError(t, svc.AttachMedia(ctx, created.ID, 1, &dto.AttachMediaDTO{MediaID: 1, SortOrder: &first}))

	second := 9
	require.NoError(t, svc.AttachMedia(ctx, created.ID, 1, &dto.AttachMediaDTO{MediaID: 1, SortOrder: &second}))

	attachment, err := landingRepo.GetAttachment(ctx, created.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, attachment)
	assert.Equal(t, 9, attachment.SortOrder)

	count, err := landingRepo.CountAttachedMedia(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLandingAttachLimit(t *testing.T) {
	svc, _, _, mediaSvc := setupLandingService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, landingInput())
	require.NoError(t, err)

	limit := uint64(config.Cfg.Uploads.MaxMediaPerLanding)
	for i := uint64(1); i <= limit; i++ {
		mediaSvc.medias[i] = &model.Media{ID: i, UserID: 1}
		require.NoError(t, svc.AttachMedia(ctx, created.ID, 1, &dto.AttachMediaDTO{MediaID: i}))
	}

	overflowID := limit + 1
	mediaSvc.medias[overflowID] = &model.Media{ID: overflowID, UserID: 1}
	err = svc.AttachMedia(ctx, created.ID, 1, &dto.AttachMediaDTO{MediaID: overflowID})
	assert.ErrorIs(t, err, ErrMediaLimitReached)
}

func TestLandingReorderRejectsUnlinkedMedia(t *testing.T) {
	svc, _, _, mediaSvc := setupLandingService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, landingInput())
	require.NoError(t, err)

	mediaSvc.medias[1] = &model.Media{ID: 1, UserID: 1}
	require.NoError(t, svc.AttachMedia(ctx, created.ID, 1, &dto.AttachMediaDTO{MediaID: 1}))

	err = svc.ReorderMedia(ctx, created.ID, 1, &dto.ReorderDTO{
		Items: []dto.ReorderItemDTO{
			{MediaID: 1, SortOrder: 2},
			{MediaID: 99, SortOrder: 1},
		},
	})
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestLandingReorderAppliesNewOrder(t *testing.T) {
	svc, landingRepo, _, mediaSvc := setupLandingService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, landingInput())
	require.NoError(t, err)

	mediaSvc.medias[1] = &model.Media{ID: 1, UserID: 1}
	mediaSvc.medias[2] = &model.Media{ID: 2, UserID: 1}
	require.NoError(t, svc.AttachMedia(ctx, created.ID, 1, &dto.AttachMediaDTO{MediaID: 1}))
	require.NoError(t, svc.AttachMedia(ctx, created.ID, 1, &dto.AttachMediaDTO{MediaID: 2}))

	require.NoError(t, svc.ReorderMedia(ctx, created.ID, 1, &dto.ReorderDTO{
		Items: []dto.ReorderItemDTO{
			{MediaID: 1, SortOrder: 2},
			{MediaID: 2, SortOrder: 1},
		},
	}))

	first, err := landingRepo.GetAttachment(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, first.SortOrder)
	second, err := landingRepo.GetAttachment(ctx, created.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, second.SortOrder)
}

func TestLandingSoftDeleteHidesPublic(t *testing.T) {
	svc, _, _, _ := setupLandingService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, landingInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID, 1))

	_, err = svc.GetPublicBySlug(ctx, created.Slug)
	assert.ErrorIs(t, err, ErrLandingNotFound)

	// 属主列表仍能看到回收站里的页面
	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotNil(t, list[0].DeletedAt)
}
