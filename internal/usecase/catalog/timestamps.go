package catalog

import (
	"time"

	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/catalog"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

func createdAt[T domain.Entity](e *T) time.Time {
	switch v := any(e).(type) {
	case *models.Genre:
		return v.CreatedAt
	case *models.Platform:
		return v.CreatedAt
	case *models.Developer:
		return v.CreatedAt
	}
	return time.Time{}
}

func setCreatedAt[T domain.Entity](e *T, t time.Time) {
	switch v := any(e).(type) {
	case *models.Genre:
		v.CreatedAt = t
	case *models.Platform:
		v.CreatedAt = t
	case *models.Developer:
		v.CreatedAt = t
	}
}
