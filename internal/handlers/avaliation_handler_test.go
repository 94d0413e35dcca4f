package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/audit"
	avaliationDomain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/avaliation"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
	ucAvaliation "github.com/AllanOliveira2022/GameZone-sub000/internal/usecase/avaliation"
)

func newAvaliationRouter(repo *mockAvaliationRepo, userID uint, role string) http.Handler {
	h := NewAvaliationHandler(ucAvaliation.NewService(repo, audit.Nop{}))

	r := newTestRouter(userID, role)
	r.GET("/avaliations", h.List)
	r.GET("/avaliations/:id", h.Get)
	r.POST("/avaliations", h.Create)
	r.PUT("/avaliations/:id", h.Update)
	r.DELETE("/avaliations/:id", h.Delete)
	return r
}

func TestAvaliationHandlerListFilters(t *testing.T) {
	repo := new(mockAvaliationRepo)
	r := newAvaliationRouter(repo, 0, "")

	repo.On("List", mock.Anything, mock.MatchedBy(func(f avaliationDomain.Filter) bool {
		return f.GameID != nil && *f.GameID == 3 && f.UserID == nil
	}), dto.NewPageParams(1, 10)).Return([]models.Avaliation{{ID: 1, GameID: 3, Score: 5}}, int64(1), nil)

	w := send(r, http.MethodGet, "/avaliations?gameId=3", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"gameId":3`)

	w = send(r, http.MethodGet, "/avaliations?userId=x", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_userId")
}

func TestAvaliationHandlerCreateAsSelf(t *testing.T) {
	repo := new(mockAvaliationRepo)
	r := newAvaliationRouter(repo, 7, models.RoleUser)

	repo.On("UserExists", mock.Anything, uint(7)).Return(true, nil)
	repo.On("GameExists", mock.Anything, uint(3)).Return(true, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Avaliation) bool {
		return a.UserID == 7 && a.GameID == 3 && a.Score == 4
	})).Return(nil)

	w := send(r, http.MethodPost, "/avaliations", `{"userID":99,"gameID":3,"score":4,"comment":"bom"}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"userId":7`)
	repo.AssertExpectations(t)
}

func TestAvaliationHandlerCreateRejectsBadInput(t *testing.T) {
	repo := new(mockAvaliationRepo)
	r := newAvaliationRouter(repo, 7, models.RoleUser)

	cases := map[string]struct {
		body string
		code string
	}{
		"score too high": {`{"gameID":3,"score":6,"comment":"bom"}`, "invalid_score"},
		"score zero":     {`{"gameID":3,"score":0,"comment":"bom"}`, "invalid_score"},
		"blank comment":  {`{"gameID":3,"score":3,"comment":" "}`, "comment_required"},
		"missing game":   {`{"score":3,"comment":"bom"}`, "invalid_request"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := send(r, http.MethodPost, "/avaliations", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.code)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAvaliationHandlerOwnership(t *testing.T) {
	repo := new(mockAvaliationRepo)
	repo.On("Get", mock.Anything, uint(5)).Return(&models.Avaliation{ID: 5, UserID: 7, GameID: 3, Score: 2, Comment: "meh"}, nil)

	stranger := newAvaliationRouter(repo, 8, models.RoleUser)

	w := send(stranger, http.MethodPut, "/avaliations/5", `{"score":5}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "avaliation_forbidden")

	w = send(stranger, http.MethodDelete, "/avaliations/5", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := newAvaliationRouter(repo, 1, models.RoleAdmin)
	repo.On("Delete", mock.Anything, uint(5)).Return(nil)

	w = send(admin, http.MethodDelete, "/avaliations/5", "")
	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
