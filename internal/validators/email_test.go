package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "client@example.com", NormalizeEmail("  Client@Example.COM "))
	assert.Equal(t, "a@b.c", NormalizeEmail("a@b.c"))
}

func TestIsEmailFormatValid(t *testing.T) {
	assert.True(t, IsEmailFormatValid("client@example.com"))
	assert.True(t, IsEmailFormatValid("first.last+tag@sub.example.com"))

	assert.False(t, IsEmailFormatValid("not-an-email"))
	assert.False(t, IsEmailFormatValid("@example.com"))
	assert.False(t, IsEmailFormatValid(""))
}
