package catalog

import (
	"strings"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/validators"
)

// Rules descreve o que varia entre gênero, plataforma e desenvolvedora.
type Rules[T Entity] struct {
	Name       string
	UniqueName bool
	Validate   func(e *T) error
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return httperr.ErrValidation("name_required", "Nome é obrigatório.")
	}
	return nil
}

func GenreRules() Rules[models.Genre] {
	return Rules[models.Genre]{
		Name:       "genre",
		UniqueName: true,
		Validate:   func(g *models.Genre) error { return ValidateName(g.Name) },
	}
}

func PlatformRules() Rules[models.Platform] {
	return Rules[models.Platform]{
		Name:       "platform",
		UniqueName: true,
		Validate:   func(p *models.Platform) error { return ValidateName(p.Name) },
	}
}

func DeveloperRules() Rules[models.Developer] {
	return Rules[models.Developer]{
		Name:     "developer",
		Validate: ValidateDeveloper,
	}
}

func ValidateDeveloper(d *models.Developer) error {
	if err := ValidateName(d.Name); err != nil {
		return err
	}
	if d.CNPJ != "" && !validators.IsCNPJValid(d.CNPJ) {
		return httperr.ErrValidation("invalid_cnpj", "CNPJ deve ter 14 dígitos.")
	}
	if d.Email != "" && !validators.IsEmailFormatValid(d.Email) {
		return httperr.ErrValidation("invalid_email", "Email inválido.")
	}
	if d.Phone != "" && !validators.IsPhoneValid(d.Phone) {
		return httperr.ErrValidation("invalid_phone", "Telefone deve ter 10 ou 11 dígitos.")
	}
	return nil
}

// NameOf lê o campo Name comum às três entidades.
func NameOf[T Entity](e *T) string {
	switch v := any(e).(type) {
	case *models.Genre:
		return v.Name
	case *models.Platform:
		return v.Name
	case *models.Developer:
		return v.Name
	}
	return ""
}

func IDOf[T Entity](e *T) uint {
	switch v := any(e).(type) {
	case *models.Genre:
		return v.ID
	case *models.Platform:
		return v.ID
	case *models.Developer:
		return v.ID
	}
	return 0
}

func SetID[T Entity](e *T, id uint) {
	switch v := any(e).(type) {
	case *models.Genre:
		v.ID = id
	case *models.Platform:
		v.ID = id
	case *models.Developer:
		v.ID = id
	}
}
