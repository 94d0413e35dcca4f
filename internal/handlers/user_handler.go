package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httpresp"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/middleware"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/timezone"
	ucUser "github.com/AllanOliveira2022/GameZone-sub000/internal/usecase/user"
)

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	users *ucUser.Service
}

func NewUserHandler(users *ucUser.Service) *UserHandler {
	return &UserHandler{users: users}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateUserRequest struct {
	Name        *string `json:"name"`
	DateOfBirth *string `json:"dateOfBirth"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Password    *string `json:"password"`
	Role        *string `json:"role"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	page, err := h.users.List(c.Request.Context(), pageParams(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, page)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	u, err := h.users.Get(c.Request.Context(), id, middleware.UserID(c), middleware.IsAdmin(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, u)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	in := ucUser.UpdateInput{
		RequesterID: middleware.UserID(c),
		IsAdmin:     middleware.IsAdmin(c),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Password:    req.Password,
		Role:        req.Role,
	}

	if req.DateOfBirth != nil {
		d, err := timezone.ParseDate(*req.DateOfBirth)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_of_birth", "dateOfBirth deve estar no formato YYYY-MM-DD.")
			return
		}
		in.DateOfBirth = &d
	}

	u, err := h.users.Update(c.Request.Context(), id, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, u)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Usuário removido.")
}
