package service

import (
	"errors"
	"net/http"
)

var (
	ErrParamInvalid        = errors.New("los datos proporcionados no son válidos")
	ErrEmailTaken          = errors.New("el correo electrónico ya está registrado")
	ErrLoginIncorrect      = errors.New("las credenciales proporcionadas son incorrectas")
	ErrUnauthenticated     = errors.New("no autenticado")
	ErrForbidden           = errors.New("no tienes permiso para realizar esta acción")
	ErrThemeNotFound       = errors.New("el tema no existe")
	ErrThemeInUse          = errors.New("el tema está en uso y no puede eliminarse")
	ErrThemeSystem         = errors.New("los temas del sistema no pueden modificarse")
	ErrLandingNotFound     = errors.New("la página no existe")
	ErrLandingSlugTaken    = errors.New("ya tienes una página con ese slug")
	ErrInvitationNotFound  = errors.New("la invitación no existe")
	ErrInvitationSlugTaken = errors.New("ya tienes una invitación con ese slug")
	ErrMediaNotFound       = errors.New("el archivo no existe")
	ErrMediaNotDeletable   = errors.New("el archivo no puede eliminarse")
	ErrMediaNotImage       = errors.New("el archivo debe ser una imagen")
	ErrMediaTooLarge       = errors.New("el archivo supera el tamaño máximo permitido")
	ErrMediaLimitReached   = errors.New("se alcanzó el número máximo de archivos adjuntos")
	UnExpectedError        = errors.New("error interno del servidor")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        http.StatusUnprocessableEntity,
	ErrEmailTaken:          http.StatusUnprocessableEntity,
	ErrLoginIncorrect:      http.StatusUnprocessableEntity,
	ErrUnauthenticated:     http.StatusUnauthorized,
	ErrForbidden:           http.StatusForbidden,
	ErrThemeNotFound:       http.StatusNotFound,
	ErrThemeInUse:          http.StatusUnprocessableEntity,
	ErrThemeSystem:         http.StatusForbidden,
	ErrLandingNotFound:     http.StatusNotFound,
	ErrLandingSlugTaken:    http.StatusUnprocessableEntity,
	ErrInvitationNotFound:  http.StatusNotFound,
	ErrInvitationSlugTaken: http.StatusUnprocessableEntity,
	ErrMediaNotFound:       http.StatusNotFound,
	ErrMediaNotDeletable:   http.StatusUnprocessableEntity,
	ErrMediaNotImage:       http.StatusUnprocessableEntity,
	ErrMediaTooLarge:       http.StatusUnprocessableEntity,
	ErrMediaLimitReached:   http.StatusUnprocessableEntity,
	UnExpectedError:        http.StatusInternalServerError,
}
