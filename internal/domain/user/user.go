package user

import (
	"strings"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/validators"
)

const MinPasswordLength = 6

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateProfile(u *models.User) error {
	if strings.TrimSpace(u.Name) == "" {
		return httperr.ErrValidation("name_required", "Nome é obrigatório.")
	}
	if !validators.IsEmailFormatValid(u.Email) {
		return httperr.ErrValidation("invalid_email", "Email inválido.")
	}
	if !validators.IsPhoneValid(u.Phone) {
		return httperr.ErrValidation("invalid_phone", "Telefone deve ter 10 ou 11 dígitos.")
	}
	return ValidateRole(u.Role)
}

func ValidateRole(role string) error {
	if role != models.RoleUser && role != models.RoleAdmin {
		return httperr.ErrValidation("invalid_role", "Perfil deve ser user ou admin.")
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return httperr.ErrValidation("weak_password", "A senha precisa de ao menos 6 caracteres.")
	}
	return nil
}
