package api

import "uspage/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler       *handler.AuthHandler
	ThemeHandler      *handler.ThemeHandler
	MediaHandler      *handler.MediaHandler
	LandingHandler    *handler.LandingHandler
	InvitationHandler *handler.InvitationHandler
}
