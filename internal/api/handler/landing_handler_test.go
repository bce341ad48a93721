package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"uspage/internal/api/dto"
	"uspage/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLandingService struct {
	ownedCalls  []uint64
	publicCalls []string
}

func (f *fakeLandingService) List(ctx context.Context, userID uint64) ([]*dto.LandingDTO, error) {
	return nil, nil
}

func (f *fakeLandingService) Create(ctx context.Context, userID uint64, createDTO *dto.CreateLandingDTO) (*dto.LandingDTO, error) {
	return nil, nil
}

func (f *fakeLandingService) GetOwned(ctx context.Context, id uint64, userID uint64) (*dto.LandingDTO, error) {
	f.ownedCalls = append(f.ownedCalls, id)
	return &dto.LandingDTO{ID: id, UserID: userID, Slug: "propia"}, nil
}

func (f *fakeLandingService) GetPublicBySlug(ctx context.Context, slug string) (*dto.LandingDTO, error) {
	f.publicCalls = append(f.publicCalls, slug)
	if slug == "no-existe" {
		return nil, service.ErrLandingNotFound
	}
	return &dto.LandingDTO{ID: 1, Slug: slug, IsPublished: true}, nil
}

func (f *fakeLandingService) Update(ctx context.Context, id uint64, userID uint64, updateDTO *dto.UpdateLandingDTO) (*dto.LandingDTO, error) {
	return nil, nil
}

func (f *fakeLandingService) Delete(ctx context.Context, id uint64, userID uint64) error {
	return nil
}

func (f *fakeLandingService) AttachMedia(ctx context.Context, landingID uint64, userID uint64, attachDTO *dto.AttachMediaDTO) error {
	return nil
}

func (f *fakeLandingService) DetachMedia(ctx context.Context, landingID uint64, mediaID uint64, userID uint64) error {
	return nil
}

func (f *fakeLandingService) ReorderMedia(ctx context.Context, landingID uint64, userID uint64, reorderDTO *dto.ReorderDTO) error {
	return nil
}

func setupShowRouter(svc service.LandingService, userID uint64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewLandingHandler(svc)
	r.GET("/api/landings/:id", func(c *gin.Context) {
		c.Set("user_id", userID)
		h.Show(c)
	})
	return r
}

func TestShowNumericIdentifierUsesOwnerPath(t *testing.T) {
	svc := &fakeLandingService{}
	r := setupShowRouter(svc, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/landings/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uint64{42}, svc.ownedCalls)
	assert.Empty(t, svc.publicCalls)
}

func TestShowNumericIdentifierRequiresAuth(t *testing.T) {
	svc := &fakeLandingService{}
	r := setupShowRouter(svc, 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/landings/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, svc.ownedCalls)
	assert.Empty(t, svc.publicCalls)
}

func TestShowSlugIdentifierUsesPublicPath(t *testing.T) {
	svc := &fakeLandingService{}
	r := setupShowRouter(svc, 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/landings/ana-y-luis", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"ana-y-luis"}, svc.publicCalls)
	assert.Empty(t, svc.ownedCalls)

	var body dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestShowUnknownSlugReturnsNotFound(t *testing.T) {
	svc := &fakeLandingService{}
	r := setupShowRouter(svc, 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/landings/no-existe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
}
