package user

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
)

func TestValidateProfile(t *testing.T) {
	ok := models.User{Name: "Ana", Email: "ana@x.com", Phone: "85987654321", Role: models.RoleUser}
	assert.NoError(t, ValidateProfile(&ok))

	bad := ok
	bad.Phone = "123"
	assert.Error(t, ValidateProfile(&bad))

	bad = ok
	bad.Email = "ana"
	assert.Error(t, ValidateProfile(&bad))

	bad = ok
	bad.Role = "root"
	assert.Error(t, ValidateProfile(&bad))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@x.com", NormalizeEmail("  Ana@X.com "))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
}
