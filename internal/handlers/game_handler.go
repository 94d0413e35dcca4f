package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/game"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httpresp"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/middleware"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/timezone"
	ucGame "github.com/AllanOliveira2022/GameZone-sub000/internal/usecase/game"
)

const maxCoverUpload = 8 << 20

// ======================================================
// HANDLER
// ======================================================

type GameHandler struct {
	create *ucGame.CreateGame
	update *ucGame.UpdateGame
	delete *ucGame.DeleteGame
	get    *ucGame.GetGame
	list   *ucGame.ListGames
	cover  *ucGame.UploadCover
}

// NewGameHandler aceita cover nil quando o storage de capas não está configurado.
func NewGameHandler(
	create *ucGame.CreateGame,
	update *ucGame.UpdateGame,
	delete *ucGame.DeleteGame,
	get *ucGame.GetGame,
	list *ucGame.ListGames,
	cover *ucGame.UploadCover,
) *GameHandler {
	return &GameHandler{
		create: create,
		update: update,
		delete: delete,
		get:    get,
		list:   list,
		cover:  cover,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type GameRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ReleaseDate *string          `json:"releaseDate"`
	GenreID     *uint            `json:"genreID"`
	PlatformID  *uint            `json:"platformID"`
	DeveloperID *uint            `json:"developerID"`
}

func (h *GameHandler) toInput(c *gin.Context, req GameRequest) (ucGame.GameInput, bool) {
	in := ucGame.GameInput{
		ActorID:     middleware.UserID(c),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		GenreID:     req.GenreID,
		PlatformID:  req.PlatformID,
		DeveloperID: req.DeveloperID,
	}

	if req.ReleaseDate != nil {
		d, err := timezone.ParseDate(*req.ReleaseDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_release_date", "releaseDate deve estar no formato YYYY-MM-DD.")
			return ucGame.GameInput{}, false
		}
		in.ReleaseDate = &d
	}

	return in, true
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *GameHandler) List(c *gin.Context) {
	var (
		f  domain.Filter
		ok bool
	)

	if f.GenreID, ok = queryUint(c, "genreId"); !ok {
		return
	}
	if f.PlatformID, ok = queryUint(c, "platformId"); !ok {
		return
	}
	if f.DeveloperID, ok = queryUint(c, "developerId"); !ok {
		return
	}
	if f.MinPrice, ok = queryDecimal(c, "minPrice"); !ok {
		return
	}
	if f.MaxPrice, ok = queryDecimal(c, "maxPrice"); !ok {
		return
	}
	f.Query = strings.TrimSpace(c.Query("q"))

	page, err := h.list.Execute(c.Request.Context(), f, pageParams(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, page)
}

func (h *GameHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	g, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, g)
}

func (h *GameHandler) Create(c *gin.Context) {
	var req GameRequest
	if !bindJSON(c, &req) {
		return
	}

	in, ok := h.toInput(c, req)
	if !ok {
		return
	}

	g, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, g)
}

func (h *GameHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req GameRequest
	if !bindJSON(c, &req) {
		return
	}

	in, ok := h.toInput(c, req)
	if !ok {
		return
	}

	g, err := h.update.Execute(c.Request.Context(), id, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, g)
}

func (h *GameHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Jogo removido.")
}

func (h *GameHandler) UploadCover(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if h.cover == nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxCoverUpload)

	fh, err := c.FormFile("cover")
	if err != nil {
		httperr.BadRequest(c, "cover_required", "Envie a imagem no campo cover.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "cover_unreadable", "Não foi possível ler a imagem.")
		return
	}
	defer f.Close()

	g, err := h.cover.Execute(c.Request.Context(), id, middleware.UserID(c), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, g)
}
