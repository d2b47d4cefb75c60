package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, CheckPasswordHash("correct horse battery", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
	assert.False(t, CheckPasswordHash("correct horse battery", "not-a-hash"))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(""))
	assert.NoError(t, ValidatePassword("longenough"))
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission("admin", PermContentModerate))
	assert.True(t, HasPermission("super-admin", PermContentModerate))

	// Admin management is reserved for super-admins.
	assert.False(t, HasPermission("admin", PermAdminsManage))
	assert.True(t, HasPermission("super-admin", PermAdminsManage))

	assert.False(t, HasPermission("user", PermContentModerate))
	assert.False(t, HasPermission("", PermContentModerate))
	assert.False(t, HasPermission("admin", "nonexistent:perm"))
}
