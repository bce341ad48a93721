package service

import (
	"context"
	"mime/multipart"

	"uspage/internal/api/dto"
	"uspage/internal/model"
	"uspage/internal/repository"
)

// --- 假仓库与假媒体服务，纯内存实现 ---

type attachKey struct {
	parentID uint64
	mediaID  uint64
}

type fakeMediaService struct {
	medias       map[uint64]*model.Media
	forceDeleted []uint64
	uploaded     *dto.MediaDTO
}

func newFakeMediaService() *fakeMediaService {
	return &fakeMediaService{medias: make(map[uint64]*model.Media)}
}

func (f *fakeMediaService) Upload(ctx context.Context, userID uint64, fileHeader *multipart.FileHeader) (*dto.MediaDTO, error) {
	if f.uploaded == nil {
		return nil, UnExpectedError
	}
	return f.uploaded, nil
}

func (f *fakeMediaService) List(ctx context.Context, userID uint64) ([]*dto.MediaDTO, error) {
	return nil, nil
}

func (f *fakeMediaService) Delete(ctx context.Context, id uint64, userID uint64) error {
	return nil
}

func (f *fakeMediaService) ForceDelete(ctx context.Context, id uint64) error {
	f.forceDeleted = append(f.forceDeleted, id)
	delete(f.medias, id)
	return nil
}

func (f *fakeMediaService) GetOwned(ctx context.Context, id uint64, userID uint64) (*model.Media, error) {
	media, ok := f.medias[id]
	if !ok || media.UserID != userID {
		return nil, ErrParamInvalid
	}
	return media, nil
}

type fakeThemeRepo struct {
	themes        map[uint64]*model.Theme
	landingCounts map[uint64]int64
	nextID        uint64
	deleted       []uint64
}

func newFakeThemeRepo() *fakeThemeRepo {
	return &fakeThemeRepo{
		themes:        make(map[uint64]*model.Theme),
		landingCounts: make(map[uint64]int64),
		nextID:        1,
	}
}

func (f *fakeThemeRepo) GetThemeById(ctx context.Context, id uint64) (*model.Theme, error) {
	theme, ok := f.themes[id]
	if !ok {
		return nil, nil
	}
	copied := *theme
	return &copied, nil
}

func (f *fakeThemeRepo) ListAccessible(ctx context.Context, userID uint64) ([]*model.Theme, error) {
	result := make([]*model.Theme, 0)
	for _, theme := range f.themes {
		if theme.UserID == nil || *theme.UserID == userID {
			copied := *theme
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeThemeRepo) CreateTheme(ctx context.Context, theme *model.Theme) error {
	theme.ID = f.nextID
	f.nextID++
	copied := *theme
	f.themes[theme.ID] = &copied
	return nil
}

func (f *fakeThemeRepo) UpdateTheme(ctx context.Context, theme *model.Theme) error {
	copied := *theme
	f.themes[theme.ID] = &copied
	return nil
}

func (f *fakeThemeRepo) DeleteTheme(ctx context.Context, id uint64) error {
	delete(f.themes, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeThemeRepo) CountLandingsUsingTheme(ctx context.Context, themeID uint64) (int64, error) {
	return f.landingCounts[themeID], nil
}

type fakeLandingRepo struct {
	landings    map[uint64]*model.Landing
	attachments map[attachKey]*model.LandingMedia
	nextID      uint64
}

func newFakeLandingRepo() *fakeLandingRepo {
	return &fakeLandingRepo{
		landings:    make(map[uint64]*model.Landing),
		attachments: make(map[attachKey]*model.LandingMedia),
		nextID:      1,
	}
}

func (f *fakeLandingRepo) GetLandingById(ctx context.Context, id uint64) (*model.Landing, error) {
	landing, ok := f.landings[id]
	if !ok {
		return nil, nil
	}
	copied := *landing
	return &copied, nil
}

func (f *fakeLandingRepo) GetPublishedBySlug(ctx context.Context, slug string) (*model.Landing, error) {
	for _, landing := range f.landings {
		if landing.Slug == slug && landing.IsPublished && !landing.DeletedAt.Valid {
			copied := *landing
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeLandingRepo) ListByUser(ctx context.Context, userID uint64) ([]*model.Landing, error) {
	result := make([]*model.Landing, 0)
	for _, landing := range f.landings {
		if landing.UserID == userID {
			copied := *landing
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeLandingRepo) CreateLanding(ctx context.Context, landing *model.Landing) error {
	landing.ID = f.nextID
	f.nextID++
	copied := *landing
	f.landings[landing.ID] = &copied
	return nil
}

func (f *fakeLandingRepo) UpdateLanding(ctx context.Context, landing *model.Landing) error {
	copied := *landing
	f.landings[landing.ID] = &copied
	return nil
}

func (f *fakeLandingRepo) SoftDeleteLanding(ctx context.Context, id uint64) error {
	if landing, ok := f.landings[id]; ok {
		landing.DeletedAt.Valid = true
	}
	return nil
}

func (f *fakeLandingRepo) SlugExists(ctx context.Context, userID uint64, slug string, excludeID uint64) (bool, error) {
	for _, landing := range f.landings {
		if landing.UserID == userID && landing.Slug == slug && landing.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLandingRepo) GetAttachment(ctx context.Context, landingID, mediaID uint64) (*model.LandingMedia, error) {
	attachment, ok := f.attachments[attachKey{landingID, mediaID}]
	if !ok {
		return nil, nil
	}
	copied := *attachment
	return &copied, nil
}

func (f *fakeLandingRepo) ListAttachedMedia(ctx context.Context, landingID uint64) ([]*repository.AttachedMedia, error) {
	return nil, nil
}

func (f *fakeLandingRepo) CountAttachedMedia(ctx context.Context, landingID uint64) (int64, error) {
	var count int64
	for key := range f.attachments {
		if key.parentID == landingID {
			count++
		}
	}
	return count, nil
}

func (f *fakeLandingRepo) MaxSortOrder(ctx context.Context, landingID uint64) (int, error) {
	max := 0
	for key, attachment := range f.attachments {
		if key.parentID == landingID && attachment.SortOrder > max {
			max = attachment.SortOrder
		}
	}
	return max, nil
}

func (f *fakeLandingRepo) UpsertAttachment(ctx context.Context, attachment *model.LandingMedia) error {
	copied := *attachment
	f.attachments[attachKey{attachment.LandingID, attachment.MediaID}] = &copied
	return nil
}

func (f *fakeLandingRepo) DeleteAttachment(ctx context.Context, landingID, mediaID uint64) error {
	delete(f.attachments, attachKey{landingID, mediaID})
	return nil
}

type fakeInvitationRepo struct {
	invitations map[uint64]*model.Invitation
	attachments map[attachKey]*model.InvitationMedia
	nextID      uint64
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{
		invitations: make(map[uint64]*model.Invitation),
		attachments: make(map[attachKey]*model.InvitationMedia),
		nextID:      1,
	}
}

func (f *fakeInvitationRepo) GetInvitationById(ctx context.Context, id uint64) (*model.Invitation, error) {
	invitation, ok := f.invitations[id]
	if !ok {
		return nil, nil
	}
	copied := *invitation
	return &copied, nil
}

func (f *fakeInvitationRepo) GetPublishedBySlug(ctx context.Context, slug string) (*model.Invitation, error) {
	for _, invitation := range f.invitations {
		if invitation.Slug == slug && invitation.IsPublished && !invitation.DeletedAt.Valid {
			copied := *invitation
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeInvitationRepo) ListByUser(ctx context.Context, userID uint64) ([]*model.Invitation, error) {
	result := make([]*model.Invitation, 0)
	for _, invitation := range f.invitations {
		if invitation.UserID == userID {
			copied := *invitation
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeInvitationRepo) CreateInvitation(ctx context.Context, invitation *model.Invitation) error {
	invitation.ID = f.nextID
	f.nextID++
	copied := *invitation
	f.invitations[invitation.ID] = &copied
	return nil
}

func (f *fakeInvitationRepo) UpdateInvitation(ctx context.Context, invitation *model.Invitation) error {
	copied := *invitation
	f.invitations[invitation.ID] = &copied
	return nil
}

func (f *fakeInvitationRepo) SoftDeleteInvitation(ctx context.Context, id uint64) error {
	if invitation, ok := f.invitations[id]; ok {
		invitation.DeletedAt.Valid = true
	}
	return nil
}

func (f *fakeInvitationRepo) SlugExists(ctx context.Context, userID uint64, slug string, excludeID uint64) (bool, error) {
	for _, invitation := range f.invitations {
		if invitation.UserID == userID && invitation.Slug == slug && invitation.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeInvitationRepo) GetAttachment(ctx context.Context, invitationID, mediaID uint64) (*model.InvitationMedia, error) {
	attachment, ok := f.attachments[attachKey{invitationID, mediaID}]
	if !ok {
		return nil, nil
	}
	copied := *attachment
	return &copied, nil
}

func (f *fakeInvitationRepo) ListAttachedMedia(ctx context.Context, invitationID uint64) ([]*model.Media, error) {
	return nil, nil
}

func (f *fakeInvitationRepo) CountAttachedMedia(ctx context.Context, invitationID uint64) (int64, error) {
	var count int64
	for key := range f.attachments {
		if key.parentID == invitationID {
			count++
		}
	}
	return count, nil
}

func (f *fakeInvitationRepo) UpsertAttachment(ctx context.Context, attachment *model.InvitationMedia) error {
	copied := *attachment
	f.attachments[attachKey{attachment.InvitationID, attachment.MediaID}] = &copied
	return nil
}

func (f *fakeInvitationRepo) DeleteAttachment(ctx context.Context, invitationID, mediaID uint64) error {
	delete(f.attachments, attachKey{invitationID, mediaID})
	return nil
}

type fakeMediaRepo struct {
	medias  map[uint64]*model.Media
	refs    map[uint64]int64
	deleted []uint64
	nextID  uint64
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{
		medias: make(map[uint64]*model.Media),
		refs:   make(map[uint64]int64),
		nextID: 1,
	}
}

func (f *fakeMediaRepo) GetMediaById(ctx context.Context, id uint64) (*model.Media, error) {
	media, ok := f.medias[id]
	if !ok {
		return nil, nil
	}
	copied := *media
	return &copied, nil
}

func (f *fakeMediaRepo) GetMediaByPath(ctx context.Context, path string) (*model.Media, error) {
	for _, media := range f.medias {
		if media.Path == path {
			copied := *media
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeMediaRepo) ListByUser(ctx context.Context, userID uint64) ([]*model.Media, error) {
	result := make([]*model.Media, 0)
	for _, media := range f.medias {
		if media.UserID == userID {
			copied := *media
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeMediaRepo) CreateMedia(ctx context.Context, media *model.Media) error {
	media.ID = f.nextID
	f.nextID++
	copied := *media
	f.medias[media.ID] = &copied
	return nil
}

func (f *fakeMediaRepo) DeleteMedia(ctx context.Context, id uint64) error {
	delete(f.medias, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeMediaRepo) CountReferences(ctx context.Context, mediaID uint64) (int64, error) {
	return f.refs[mediaID], nil
}
