package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code         string `json:"error_code"`
	Message      string `json:"message"`
	InvalidGames []uint `json:"invalidGames,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Respond traduz um erro de domínio para status + JSON. Erros desconhecidos
// viram 500 com mensagem genérica; a causa fica em c.Errors para o logger.
func Respond(c *gin.Context, err error) {
	status, body := Translate(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, body)
}

func Translate(err error) (int, HTTPError) {
	var (
		ve *ValidationError
		nf *NotFoundError
		fe *ForbiddenError
		ue *UnauthorizedError
		ce *ConflictError
	)

	switch {
	case errors.As(err, &ve):
		msg := ve.Message
		if msg == "" {
			msg = "Dados inválidos."
		}
		return http.StatusBadRequest, HTTPError{Code: ve.Code, Message: msg, InvalidGames: ve.InvalidGames}
	case errors.As(err, &nf):
		return http.StatusNotFound, HTTPError{Code: nf.Error(), Message: "Registro não encontrado."}
	case errors.As(err, &fe):
		return http.StatusForbidden, HTTPError{Code: fe.Code, Message: "Acesso negado."}
	case errors.As(err, &ue):
		return http.StatusUnauthorized, HTTPError{Code: ue.Code, Message: "Não autenticado."}
	case errors.As(err, &ce):
		msg := ce.Message
		if msg == "" {
			msg = "Registro duplicado."
		}
		return http.StatusConflict, HTTPError{Code: ce.Code, Message: msg}
	default:
		return http.StatusInternalServerError, HTTPError{Code: "internal_error", Message: "Erro interno."}
	}
}
