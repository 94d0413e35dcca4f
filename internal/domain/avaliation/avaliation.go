package avaliation

import (
	"strings"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

func ValidateScore(score int) error {
	if score < models.MinScore || score > models.MaxScore {
		return httperr.ErrValidation("invalid_score", "A nota deve estar entre 1 e 5.")
	}
	return nil
}

func ValidateComment(comment string) error {
	if strings.TrimSpace(comment) == "" {
		return httperr.ErrValidation("comment_required", "Comentário é obrigatório.")
	}
	return nil
}
