package handler

import (
	"uspage/internal/api/dto"
	"uspage/internal/pkg/response"
	"uspage/internal/pkg/util"
	"uspage/internal/service"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	themeSvc service.ThemeService
}

func NewThemeHandler(themeSvc service.ThemeService) *ThemeHandler {
	return &ThemeHandler{themeSvc: themeSvc}
}

func (s *ThemeHandler) List(c *gin.Context) {
	themes, err := s.themeSvc.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, themes)
}

func (s *ThemeHandler) Get(c *gin.Context) {
	id := util.StrToUint64(c.Param("id"))
	if id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	theme, err := s.themeSvc.Get(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, theme)
}

func (s *ThemeHandler) Create(c *gin.Context) {
	var createDTO dto.CreateThemeDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	// 背景图文件可选
	bgFile, _ := c.FormFile("bg_image")

	theme, err := s.themeSvc.Create(c.Request.Context(), currentUserID(c), &createDTO, bgFile)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, theme)
}

func (s *ThemeHandler) Update(c *gin.Context) {
	id := util.StrToUint64(c.Param("id"))
	if id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var updateDTO dto.UpdateThemeDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	bgFile, _ := c.FormFile("bg_image")

	theme, err := s.themeSvc.Update(c.Request.Context(), id, currentUserID(c), &updateDTO, bgFile)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, theme)
}

func (s *ThemeHandler) Delete(c *gin.Context) {
	id := util.StrToUint64(c.Param("id"))
	if id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.themeSvc.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
