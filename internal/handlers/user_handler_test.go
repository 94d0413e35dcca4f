package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/audit"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/auth"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
	ucUser "github.com/AllanOliveira2022/GameZone-sub000/internal/usecase/user"
)

func newUserService(repo *mockUserRepo) (*ucUser.Service, *auth.JWTIssuer) {
	tokens := auth.NewJWTIssuer("secret", time.Hour)
	return ucUser.NewService(repo, auth.NewBcryptHasher(bcrypt.MinCost), tokens, audit.Nop{}, nil), tokens
}

func newUserRouter(svc *ucUser.Service, userID uint, role string) http.Handler {
	authH := NewAuthHandler(svc)
	userH := NewUserHandler(svc)
	meH := NewMeHandler(svc)

	r := newTestRouter(userID, role)
	r.POST("/signup", authH.Signup)
	r.POST("/login", authH.Login)
	r.GET("/me", meH.GetMe)
	r.GET("/users/:id", userH.Get)
	r.PUT("/users/:id", userH.Update)
	return r
}

func TestAuthHandlerSignup(t *testing.T) {
	repo := new(mockUserRepo)
	svc, tokens := newUserService(repo)
	r := newUserRouter(svc, 0, "")

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "ana@x.com" && u.Role == models.RoleUser && u.PasswordHash != "segredo1"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.User).ID = 12
	}).Return(nil)

	w := send(r, http.MethodPost, "/signup", `{
		"name": "Ana",
		"dateOfBirth": "1990-04-02",
		"email": "Ana@X.com",
		"phone": "85987654321",
		"password": "segredo1"
	}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		User  map[string]any `json:"user"`
		Token string         `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body.User, "passwordHash")
	assert.EqualValues(t, 12, body.User["id"])

	claims, err := tokens.Verify(body.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(12), claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestAuthHandlerSignupBadInput(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newUserService(repo)
	r := newUserRouter(svc, 0, "")

	cases := map[string]struct {
		body string
		code string
	}{
		"bad birth date": {`{"name":"Ana","dateOfBirth":"02/04/1990","email":"ana@x.com","phone":"85987654321","password":"segredo1"}`, "invalid_date_of_birth"},
		"short password": {`{"name":"Ana","email":"ana@x.com","phone":"85987654321","password":"123"}`, "invalid_request"},
		"bad email":      {`{"name":"Ana","email":"ana","phone":"85987654321","password":"segredo1"}`, "invalid_request"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := send(r, http.MethodPost, "/signup", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.code)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthHandlerLogin(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newUserService(repo)
	r := newUserRouter(svc, 0, "")

	hash, err := auth.NewBcryptHasher(bcrypt.MinCost).Hash("segredo1")
	require.NoError(t, err)

	repo.On("GetByEmail", mock.Anything, "ana@x.com").Return(&models.User{ID: 12, Email: "ana@x.com", PasswordHash: hash, Role: models.RoleUser}, nil)
	repo.On("GetByEmail", mock.Anything, "ghost@x.com").Return(nil, httperr.ErrNotFound("user"))

	w := send(r, http.MethodPost, "/login", `{"email":"ana@x.com","password":"segredo1"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"token"`)

	for _, body := range []string{
		`{"email":"ana@x.com","password":"errada"}`,
		`{"email":"ghost@x.com","password":"segredo1"}`,
	} {
		w = send(r, http.MethodPost, "/login", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_credentials")
	}
}

func TestUserHandlerAccess(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newUserService(repo)

	repo.On("Get", mock.Anything, uint(7)).Return(&models.User{ID: 7, Name: "Bia", Role: models.RoleUser}, nil)

	self := newUserRouter(svc, 7, models.RoleUser)
	w := send(self, http.MethodGet, "/me", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bia")

	stranger := newUserRouter(svc, 8, models.RoleUser)
	w = send(stranger, http.MethodGet, "/users/7", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "user_forbidden")

	w = send(self, http.MethodPut, "/users/7", `{"role":"admin"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = send(self, http.MethodPut, "/users/7", `{"dateOfBirth":"1990/04/02"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_date_of_birth")

	admin := newUserRouter(svc, 1, models.RoleAdmin)
	w = send(admin, http.MethodGet, "/users/7", "")
	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
