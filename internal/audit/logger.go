package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Recorder grava eventos de auditoria depois do commit. Falhas nunca
// quebram a requisição: são só logadas.
type Recorder interface {
	Record(ctx context.Context, ev Event)
}

type Logger struct {
	db  *gorm.DB
	log *slog.Logger
}

func New(db *gorm.DB, log *slog.Logger) *Logger {
	return &Logger{db: db, log: log}
}

func (l *Logger) Record(ctx context.Context, ev Event) {
	entry := models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
	}

	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			entry.Metadata = datatypes.JSON(b)
		}
	}

	if err := l.db.WithContext(ctx).Create(&entry).Error; err != nil {
		l.log.WarnContext(ctx, "audit write failed",
			"action", ev.Action,
			"entity", ev.Entity,
			"error", err,
		)
	}
}

type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
}

func (l *Logger) List(
	ctx context.Context,
	f Filter,
	page dto.PageParams,
) ([]models.AuditLog, int64, error) {

	q := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", f.To.Add(24*time.Hour))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// Nop descarta eventos; usado em testes e quando não há banco.
type Nop struct{}

func (Nop) Record(context.Context, Event) {}

func UintPtr(v uint) *uint {
	return &v
}
