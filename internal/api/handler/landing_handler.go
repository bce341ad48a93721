package handler

import (
	"net/http"
	"strconv"

	"uspage/internal/api/dto"
	"uspage/internal/pkg/response"
	"uspage/internal/pkg/util"
	"uspage/internal/service"

	"github.com/gin-gonic/gin"
)

type LandingHandler struct {
	landingSvc service.LandingService
}

func NewLandingHandler(landingSvc service.LandingService) *LandingHandler {
	return &LandingHandler{landingSvc: landingSvc}
}

func (s *LandingHandler) List(c *gin.Context) {
	landings, err := s.landingSvc.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, landings)
}

func (s *LandingHandler) Create(c *gin.Context) {
	var createDTO dto.CreateLandingDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	landing, err := s.landingSvc.Create(c.Request.Context(), currentUserID(c), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, landing)
}

// Show 同一路径承载两条读取路径
// 纯数字按属主路径处理（必须登录且是本人），其余按公开 slug 处理
func (s *LandingHandler) Show(c *gin.Context) {
	identifier := c.Param("id")

	if id, err := strconv.ParseUint(identifier, 10, 64); err == nil {
		userID := currentUserID(c)
		if userID == 0 {
			response.Fail(c, http.StatusUnauthorized, "no autenticado")
			return
		}
		landing, err := s.landingSvc.GetOwned(c.Request.Context(), id, userID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, landing)
		return
	}

	landing, err := s.landingSvc.GetPublicBySlug(c.Request.Context(), identifier)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, landing)
}

func (s *LandingHandler) Update(c *gin.Context) {
	id := util.StrToUint64(c.Param("id"))
	if id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var updateDTO dto.UpdateLandingDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	landing, err := s.landingSvc.Update(c.Request.Context(), id, currentUserID(c), &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, landing)
}

func (s *LandingHandler) Delete(c *gin.Context) {
	id := util.StrToUint64(c.Param("id"))
	if id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.landingSvc.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *LandingHandler) AttachMedia(c *gin.Context) {
	id := util.StrToUint64(c.Param("id"))
	if id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var attachDTO dto.AttachMediaDTO
	if err := c.ShouldBind(&attachDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&attachDTO); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.landingSvc.AttachMedia(c.Request.Context(), id, currentUserID(c), &attachDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *LandingHandler) DetachMedia(c *gin.Context) {
	id := util.StrToUint64(c.Param("id"))
	mediaID := util.StrToUint64(c.Param("media_id"))
	if id == 0 || mediaID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.landingSvc.DetachMedia(c.Request.Context(), id, mediaID, currentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *LandingHandler) ReorderMedia(c *gin.Context) {
	id := util.StrToUint64(c.Param("id"))
	if id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var reorderDTO dto.ReorderDTO
	if err := c.ShouldBind(&reorderDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&reorderDTO); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.landingSvc.ReorderMedia(c.Request.Context(), id, currentUserID(c), &reorderDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
