package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httpresp"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/timezone"
	ucUser "github.com/AllanOliveira2022/GameZone-sub000/internal/usecase/user"
)

type AuthHandler struct {
	users *ucUser.Service
}

func NewAuthHandler(users *ucUser.Service) *AuthHandler {
	return &AuthHandler{users: users}
}

// --------- Requests ---------

type SignupRequest struct {
	Name        string `json:"name" binding:"required"`
	DateOfBirth string `json:"dateOfBirth"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	Address     string `json:"address"`
	Password    string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	var dob datatypes.Date
	if req.DateOfBirth != "" {
		d, err := timezone.ParseDate(req.DateOfBirth)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_of_birth", "dateOfBirth deve estar no formato YYYY-MM-DD.")
			return
		}
		dob = d
	}

	session, err := h.users.Signup(c.Request.Context(), ucUser.SignupInput{
		Name:        req.Name,
		DateOfBirth: dob,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Password:    req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, session)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, session)
}
