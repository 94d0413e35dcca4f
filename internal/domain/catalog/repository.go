package catalog

import (
	"context"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

// Entity são as tabelas de referência apontadas por games.
type Entity interface {
	models.Genre | models.Platform | models.Developer
}

type Repository[T Entity] interface {
	Create(ctx context.Context, e *T) error
	Update(ctx context.Context, e *T) error
	Get(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, page dto.PageParams) ([]T, int64, error)

	// DeleteDetachingGames zera a FK nos jogos e apaga o registro, na mesma
	// transação. Devolve os jogos que foram soltos.
	DeleteDetachingGames(ctx context.Context, id uint) ([]uint, error)

	// GameIDs lista os jogos que apontam para o registro.
	GameIDs(ctx context.Context, id uint) ([]uint, error)

	// NameTaken ignora o registro exceptID (0 para criação).
	NameTaken(ctx context.Context, name string, exceptID uint) (bool, error)
}
