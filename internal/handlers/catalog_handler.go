package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/catalog"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httpresp"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/middleware"
	ucCatalog "github.com/AllanOliveira2022/GameZone-sub000/internal/usecase/catalog"
)

// CatalogHandler serve gêneros, plataformas e desenvolvedoras; o corpo
// da requisição é o próprio modelo.
type CatalogHandler[T domain.Entity] struct {
	svc *ucCatalog.Service[T]
}

func NewCatalogHandler[T domain.Entity](svc *ucCatalog.Service[T]) *CatalogHandler[T] {
	return &CatalogHandler[T]{svc: svc}
}

func (h *CatalogHandler[T]) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), pageParams(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, page)
}

func (h *CatalogHandler[T]) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	e, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, e)
}

func (h *CatalogHandler[T]) Create(c *gin.Context) {
	var req T
	if !bindJSON(c, &req) {
		return
	}

	e, err := h.svc.Create(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, e)
}

func (h *CatalogHandler[T]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req T
	if !bindJSON(c, &req) {
		return
	}

	e, err := h.svc.Update(c.Request.Context(), middleware.UserID(c), id, &req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, e)
}

func (h *CatalogHandler[T]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Registro removido.")
}
