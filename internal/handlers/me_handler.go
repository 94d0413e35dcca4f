package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httpresp"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/middleware"
	ucUser "github.com/AllanOliveira2022/GameZone-sub000/internal/usecase/user"
)

type MeHandler struct {
	users *ucUser.Service
}

func NewMeHandler(users *ucUser.Service) *MeHandler {
	return &MeHandler{users: users}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := middleware.UserID(c)

	u, err := h.users.Get(c.Request.Context(), userID, userID, false)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, u)
}
