package user

import (
	"context"
	"strings"

	"gorm.io/datatypes"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/audit"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/auth"
	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/user"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type SignupInput struct {
	Name        string
	DateOfBirth datatypes.Date
	Email       string
	Phone       string
	Address     string
	Password    string
}

type UpdateInput struct {
	RequesterID uint
	IsAdmin     bool

	Name        *string
	DateOfBirth *datatypes.Date
	Email       *string
	Phone       *string
	Address     *string
	Password    *string
	Role        *string
}

type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	repo        domain.Repository
	hasher      auth.Hasher
	tokens      auth.TokenIssuer
	audit       audit.Recorder
	checkDomain func(email string) bool
}

// NewService recebe checkDomain nil quando a checagem de domínio do email está desligada.
func NewService(
	repo domain.Repository,
	hasher auth.Hasher,
	tokens auth.TokenIssuer,
	audit audit.Recorder,
	checkDomain func(email string) bool,
) *Service {
	return &Service{
		repo:        repo,
		hasher:      hasher,
		tokens:      tokens,
		audit:       audit,
		checkDomain: checkDomain,
	}
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (*Session, error) {
	u := &models.User{
		Name:        strings.TrimSpace(in.Name),
		DateOfBirth: in.DateOfBirth,
		Email:       domain.NormalizeEmail(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Address:     in.Address,
		Role:        models.RoleUser,
	}

	if err := domain.ValidateProfile(u); err != nil {
		return nil, err
	}
	if err := s.checkEmailDomain(u.Email); err != nil {
		return nil, err
	}
	if err := s.setPassword(u, in.Password); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.Event{
		UserID:   &u.ID,
		Action:   "user_signup",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return s.session(u)
}

func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.repo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrUnauthorized("invalid_credentials")
		}
		return nil, err
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		return nil, httperr.ErrUnauthorized("invalid_credentials")
	}

	return s.session(u)
}

func (s *Service) Get(ctx context.Context, id, requesterID uint, isAdmin bool) (*models.User, error) {
	if !isAdmin && id != requesterID {
		return nil, httperr.ErrForbidden("user_forbidden")
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, page dto.PageParams) (dto.Page[models.User], error) {
	users, total, err := s.repo.List(ctx, page)
	if err != nil {
		return dto.Page[models.User]{}, err
	}
	return dto.NewPage(users, total, page), nil
}

func (s *Service) Update(ctx context.Context, id uint, in UpdateInput) (*models.User, error) {
	if !in.IsAdmin && id != in.RequesterID {
		return nil, httperr.ErrForbidden("user_forbidden")
	}
	if in.Role != nil && !in.IsAdmin {
		return nil, httperr.ErrForbidden("role_change_forbidden")
	}

	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.DateOfBirth != nil {
		u.DateOfBirth = *in.DateOfBirth
	}
	if in.Email != nil {
		u.Email = domain.NormalizeEmail(*in.Email)
		if err := s.checkEmailDomain(u.Email); err != nil {
			return nil, err
		}
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		u.Address = *in.Address
	}
	if in.Role != nil {
		u.Role = *in.Role
	}

	if err := domain.ValidateProfile(u); err != nil {
		return nil, err
	}

	if in.Password != nil {
		if err := s.setPassword(u, *in.Password); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.Event{
		UserID:   &in.RequesterID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"passwordChanged": in.Password != nil, "roleChanged": in.Role != nil},
	})
	return u, nil
}

// Delete apaga o usuário com avaliações e compras.
func (s *Service) Delete(ctx context.Context, id, actorID uint) error {
	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, audit.Event{
		UserID:   &actorID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &id,
	})
	return nil
}

// Promote dá perfil admin a um usuário existente; usado pela CLI.
func (s *Service) Promote(ctx context.Context, email string) (*models.User, error) {
	u, err := s.repo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	u.Role = models.RoleAdmin
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.Event{
		Action:   "user_promoted",
		Entity:   "user",
		EntityID: &u.ID,
	})
	return u, nil
}

func (s *Service) setPassword(u *models.User, password string) error {
	if err := domain.ValidatePassword(password); err != nil {
		return err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (s *Service) checkEmailDomain(email string) error {
	if s.checkDomain != nil && !s.checkDomain(email) {
		return httperr.ErrValidation("invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
	}
	return nil
}

func (s *Service) session(u *models.User) (*Session, error) {
	token, err := s.tokens.Issue(auth.Claims{UserID: u.ID, Role: u.Role})
	if err != nil {
		return nil, err
	}
	return &Session{User: u, Token: token}, nil
}
