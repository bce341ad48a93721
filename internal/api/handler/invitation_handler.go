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

type InvitationHandler struct {
	invitationSvc service.InvitationService
}

func NewInvitationHandler(invitationSvc service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationSvc: invitationSvc}
}

func (s *InvitationHandler) List(c *gin.Context) {
	invitations, err := s.invitationSvc.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, invitations)
}

func (s *InvitationHandler) Create(c *gin.Context) {
	var createDTO dto.CreateInvitationDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	invitation, err := s.invitationSvc.Create(c.Request.Context(), currentUserID(c), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, invitation)
}

// Show 纯数字按属主路径处理，其余按公开 slug 处理
func (s *InvitationHandler) Show(c *gin.Context) {
	identifier := c.Param("id")

	if id, err := strconv.ParseUint(identifier, 10, 64); err == nil {
		userID := currentUserID(c)
		if userID == 0 {
			response.Fail(c, http.StatusUnauthorized, "no autenticado")
			return
		}
		invitation, err := s.invitationSvc.GetOwned(c.Request.Context(), id, userID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, invitation)
		return
	}

	invitation, err := s.invitationSvc.GetPublicBySlug(c.Request.Context(), identifier)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, invitation)
}

func (s *InvitationHandler) Update(c *gin.Context) {
	id := util.StrToUint64(c.Param("id"))
	if id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var updateDTO dto.UpdateInvitationDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	invitation, err := s.invitationSvc.Update(c.Request.Context(), id, currentUserID(c), &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, invitation)
}

func (s *InvitationHandler) Delete(c *gin.Context) {
	id := util.StrToUint64(c.Param("id"))
	if id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.invitationSvc.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *InvitationHandler) AttachMedia(c *gin.Context) {
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

	if err := s.invitationSvc.AttachMedia(c.Request.Context(), id, currentUserID(c), attachDTO.MediaID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *InvitationHandler) DetachMedia(c *gin.Context) {
	id := util.StrToUint64(c.Param("id"))
	mediaID := util.StrToUint64(c.Param("media_id"))
	if id == 0 || mediaID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.invitationSvc.DetachMedia(c.Request.Context(), id, mediaID, currentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
