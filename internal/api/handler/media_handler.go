package handler

import (
	"uspage/internal/pkg/response"
	"uspage/internal/pkg/util"
	"uspage/internal/service"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc service.MediaService
}

func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc}
}

func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	mediaDTO, err := s.mediaSvc.Upload(c.Request.Context(), currentUserID(c), file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, mediaDTO)
}

func (s *MediaHandler) List(c *gin.Context) {
	medias, err := s.mediaSvc.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, medias)
}

func (s *MediaHandler) Delete(c *gin.Context) {
	id := util.StrToUint64(c.Param("id"))
	if id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.mediaSvc.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
