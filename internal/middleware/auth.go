package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/auth"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// AuthMiddleware exige "Authorization: Bearer <token>". Sem cabeçalho → 401;
// cabeçalho malformado ou token inválido/expirado → 403.
func AuthMiddleware(tokens auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Abort()
			httperr.Unauthorized(c, "missing_authorization_header", "Token não informado.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.Abort()
			httperr.Forbidden(c, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			c.Abort()
			httperr.Forbidden(c, "invalid_token", "Token inválido ou expirado.")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.Abort()
			httperr.Forbidden(c, "admin_only", "Apenas administradores.")
			return
		}
		c.Next()
	}
}

func UserID(c *gin.Context) uint {
	return c.MustGet(ContextUserID).(uint)
}

func IsAdmin(c *gin.Context) bool {
	return c.GetString(ContextUserRole) == models.RoleAdmin
}
