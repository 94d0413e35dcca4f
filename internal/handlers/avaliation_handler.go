package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/avaliation"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httpresp"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/middleware"
	ucAvaliation "github.com/AllanOliveira2022/GameZone-sub000/internal/usecase/avaliation"
)

// ======================================================
// HANDLER
// ======================================================

type AvaliationHandler struct {
	svc *ucAvaliation.Service
}

func NewAvaliationHandler(svc *ucAvaliation.Service) *AvaliationHandler {
	return &AvaliationHandler{svc: svc}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAvaliationRequest struct {
	UserID  uint   `json:"userID"`
	GameID  uint   `json:"gameID" binding:"required"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

type UpdateAvaliationRequest struct {
	Score   *int    `json:"score"`
	Comment *string `json:"comment"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *AvaliationHandler) List(c *gin.Context) {
	var (
		f  domain.Filter
		ok bool
	)

	if f.GameID, ok = queryUint(c, "gameId"); !ok {
		return
	}
	if f.UserID, ok = queryUint(c, "userId"); !ok {
		return
	}

	page, err := h.svc.List(c.Request.Context(), f, pageParams(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, page)
}

func (h *AvaliationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	a, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, a)
}

func (h *AvaliationHandler) Create(c *gin.Context) {
	var req CreateAvaliationRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.svc.Create(c.Request.Context(), ucAvaliation.CreateInput{
		RequesterID: middleware.UserID(c),
		IsAdmin:     middleware.IsAdmin(c),
		UserID:      req.UserID,
		GameID:      req.GameID,
		Score:       req.Score,
		Comment:     req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, a)
}

func (h *AvaliationHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateAvaliationRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.svc.Update(c.Request.Context(), id, ucAvaliation.UpdateInput{
		RequesterID: middleware.UserID(c),
		IsAdmin:     middleware.IsAdmin(c),
		Score:       req.Score,
		Comment:     req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, a)
}

func (h *AvaliationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.svc.Delete(c.Request.Context(), id, middleware.UserID(c), middleware.IsAdmin(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Avaliação removida.")
}
