package game

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

func TestValidate(t *testing.T) {
	assert.True(t, httperr.IsValidation(Validate(&models.Game{Name: " "})))
	assert.True(t, httperr.IsValidation(Validate(&models.Game{
		Name:  "Hades",
		Price: decimal.RequireFromString("-1"),
	})))
	assert.NoError(t, Validate(&models.Game{Name: "Hades", Price: decimal.Zero}))
}

func TestFilterValidate(t *testing.T) {
	lo := decimal.RequireFromString("50")
	hi := decimal.RequireFromString("10")

	assert.Error(t, Filter{MinPrice: &lo, MaxPrice: &hi}.Validate())
	assert.NoError(t, Filter{MinPrice: &hi, MaxPrice: &lo}.Validate())
	assert.NoError(t, Filter{MinPrice: &lo}.Validate())
}
