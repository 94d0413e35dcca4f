package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/audit"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httpresp"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}

	// --------------------------------------------------
	// Datas opcionais (YYYY-MM-DD)
	// --------------------------------------------------

	for key, dst := range map[string]**time.Time{"from": &f.From, "to": &f.To} {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		d, err := time.ParseInLocation(timezone.DateLayout, raw, time.UTC)
		if err != nil {
			httperr.BadRequest(c, "invalid_"+key, "Data deve estar no formato YYYY-MM-DD.")
			return
		}
		*dst = &d
	}

	page := pageParams(c)

	logs, total, err := h.logs.List(c.Request.Context(), f, page)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.Page(c, dto.NewPage(logs, total, page))
}
