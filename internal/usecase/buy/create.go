package buy

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/audit"
	domain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/buy"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBuyInput struct {
	RequesterID uint
	IsAdmin     bool

	UserID  uint
	DateBuy time.Time
	Items   []domain.ItemInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateBuy struct {
	repo    domain.Repository
	audit   audit.Recorder
	created metric.Int64Counter
}

func NewCreateBuy(
	repo domain.Repository,
	audit audit.Recorder,
) *CreateBuy {
	return &CreateBuy{
		repo:    repo,
		audit:   audit,
		created: buysCreatedCounter(),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBuy) Execute(
	ctx context.Context,
	in CreateBuyInput,
) (b *models.Buy, err error) {

	ctx, span := startSpan(ctx, "buy.create",
		attribute.Int("buy.user_id", int(in.UserID)),
		attribute.Int("buy.items", len(in.Items)),
	)
	defer func() { endSpan(span, err) }()

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	if in.UserID == 0 {
		return nil, httperr.ErrValidation("user_id_required", "userID é obrigatório.")
	}
	if err := domain.ValidateDate(in.DateBuy); err != nil {
		return nil, err
	}
	if err := domain.ValidateItems(in.Items); err != nil {
		return nil, err
	}

	if !in.IsAdmin && in.UserID != in.RequesterID {
		return nil, httperr.ErrForbidden("buy_forbidden")
	}

	// --------------------------------------------------
	// 2️⃣ Usuário
	// --------------------------------------------------
	ok, err := uc.repo.UserExists(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrValidation("user_not_found", "Usuário informado não existe.")
	}

	// --------------------------------------------------
	// 3️⃣ Jogos: uma consulta e diferença de conjuntos
	// --------------------------------------------------
	if err := checkGames(ctx, uc.repo, in.Items); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Total + gravação atômica
	// --------------------------------------------------
	buy := &models.Buy{
		UserID:  in.UserID,
		DateBuy: in.DateBuy,
		Price:   domain.Total(in.Items),
		Items:   domain.ToModels(in.Items),
	}

	if err := uc.repo.CreateBuy(ctx, buy); err != nil {
		return nil, err
	}

	uc.created.Add(ctx, 1)
	uc.audit.Record(ctx, audit.Event{
		UserID:   &in.RequesterID,
		Action:   "buy_created",
		Entity:   "buy",
		EntityID: &buy.ID,
		Metadata: map[string]any{"price": buy.Price.StringFixed(2), "items": len(buy.Items)},
	})

	// --------------------------------------------------
	// 5️⃣ Releitura hidratada
	// --------------------------------------------------
	return uc.repo.GetBuyDetailed(ctx, buy.ID)
}

func checkGames(
	ctx context.Context,
	repo domain.Repository,
	items []domain.ItemInput,
) error {

	ids := domain.CollectGameIDs(items)

	found, err := repo.FindExistingGameIDs(ctx, ids)
	if err != nil {
		return err
	}

	if missing := domain.MissingIDs(ids, found); len(missing) > 0 {
		return httperr.ErrInvalidGames(missing)
	}
	return nil
}
