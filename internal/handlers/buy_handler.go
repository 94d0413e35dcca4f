package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/buy"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httpresp"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/middleware"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/timezone"
	ucBuy "github.com/AllanOliveira2022/GameZone-sub000/internal/usecase/buy"
)

// ======================================================
// USE CASES
// ======================================================

type (
	buyCreator interface {
		Execute(ctx context.Context, in ucBuy.CreateBuyInput) (*models.Buy, error)
	}
	buyUpdater interface {
		Execute(ctx context.Context, in ucBuy.UpdateBuyInput) (*models.Buy, error)
	}
	buyDeleter interface {
		Execute(ctx context.Context, buyID, requesterID uint, isAdmin bool) error
	}
	buyGetter interface {
		Execute(ctx context.Context, buyID, requesterID uint) (*models.Buy, error)
	}
	buyLister interface {
		Execute(ctx context.Context, in ucBuy.ListBuysInput) (dto.Page[models.Buy], error)
	}
	buyCheckout interface {
		Execute(ctx context.Context, buyID, requesterID uint) (*domain.CheckoutSession, error)
	}
)

// ======================================================
// HANDLER
// ======================================================

type BuyHandler struct {
	create   buyCreator
	update   buyUpdater
	delete   buyDeleter
	get      buyGetter
	list     buyLister
	checkout buyCheckout
}

func NewBuyHandler(
	create buyCreator,
	update buyUpdater,
	delete buyDeleter,
	get buyGetter,
	list buyLister,
	checkout buyCheckout,
) *BuyHandler {
	return &BuyHandler{
		create:   create,
		update:   update,
		delete:   delete,
		get:      get,
		list:     list,
		checkout: checkout,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BuyItemRequest struct {
	GameID   uint             `json:"gameID"`
	PriceBuy *decimal.Decimal `json:"priceBuy"`
}

type CreateBuyRequest struct {
	UserID  uint             `json:"userID"`
	DateBuy string           `json:"dateBuy"`
	Items   []BuyItemRequest `json:"items"`
}

type UpdateBuyRequest struct {
	DateBuy *string          `json:"dateBuy"`
	Items   []BuyItemRequest `json:"items"`
}

func toItemInputs(c *gin.Context, items []BuyItemRequest) ([]domain.ItemInput, bool) {
	out := make([]domain.ItemInput, 0, len(items))
	for _, it := range items {
		if it.PriceBuy == nil {
			httperr.BadRequest(c, "price_buy_required", "Todo item precisa de priceBuy.")
			c.Abort()
			return nil, false
		}
		out = append(out, domain.ItemInput{GameID: it.GameID, PriceBuy: *it.PriceBuy})
	}
	return out, true
}

func parseDateBuy(c *gin.Context, raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, true
	}
	t, err := timezone.ParseTimestamp(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_buy", "dateBuy inválido.")
		c.Abort()
		return time.Time{}, false
	}
	return t, true
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *BuyHandler) Create(c *gin.Context) {
	var req CreateBuyRequest
	if !bindJSON(c, &req) {
		return
	}

	items, ok := toItemInputs(c, req.Items)
	if !ok {
		return
	}
	dateBuy, ok := parseDateBuy(c, req.DateBuy)
	if !ok {
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBuy.CreateBuyInput{
		RequesterID: middleware.UserID(c),
		IsAdmin:     middleware.IsAdmin(c),
		UserID:      req.UserID,
		DateBuy:     dateBuy,
		Items:       items,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BuyHandler) List(c *gin.Context) {
	userID, ok := queryUint(c, "userId")
	if !ok {
		return
	}

	page, err := h.list.Execute(c.Request.Context(), ucBuy.ListBuysInput{
		RequesterID: middleware.UserID(c),
		IsAdmin:     middleware.IsAdmin(c),
		UserID:      userID,
		Page:        pageParams(c),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, page)
}

func (h *BuyHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	b, err := h.get.Execute(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BuyHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateBuyRequest
	if !bindJSON(c, &req) {
		return
	}

	items, ok := toItemInputs(c, req.Items)
	if !ok {
		return
	}

	in := ucBuy.UpdateBuyInput{
		BuyID:       id,
		RequesterID: middleware.UserID(c),
		IsAdmin:     middleware.IsAdmin(c),
		Items:       items,
	}

	if req.DateBuy != nil {
		d, ok := parseDateBuy(c, *req.DateBuy)
		if !ok {
			return
		}
		in.DateBuy = &d
	}

	b, err := h.update.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BuyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id, middleware.UserID(c), middleware.IsAdmin(c)); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Compra removida.")
}

func (h *BuyHandler) Checkout(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s, err := h.checkout.Execute(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, s)
}
