package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
)

// pathID lê :id; em caso de erro já responde 400.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		c.Abort()
		return 0, false
	}
	return uint(id), true
}

func queryUint(c *gin.Context, key string) (*uint, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+key, "Parâmetro "+key+" inválido.")
		c.Abort()
		return nil, false
	}
	id := uint(v)
	return &id, true
}

func queryDecimal(c *gin.Context, key string) (*decimal.Decimal, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+key, "Parâmetro "+key+" inválido.")
		c.Abort()
		return nil, false
	}
	return &v, true
}

func pageParams(c *gin.Context) dto.PageParams {
	return dto.ParsePageParams(c.Query("page"), c.Query("limit"))
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		c.Abort()
		return false
	}
	return true
}
