package storage

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "dress_photo.jpg", sanitizeFilename("dress photo.jpg"))
	assert.Equal(t, "a_b_.png", sanitizeFilename("a/b?.png"))
	assert.Equal(t, "plain-name_1.webp", sanitizeFilename("plain-name_1.webp"))
}

func TestUniqueName(t *testing.T) {
	name := UniqueName("fitting photo.jpg")

	// <yyyymmdd>-<uuid>-<sanitized original>
	pattern := regexp.MustCompile(`^\d{8}-[0-9a-f-]{36}-fitting_photo\.jpg$`)
	assert.Regexp(t, pattern, name)

	// Two calls never collide even for the same original.
	assert.NotEqual(t, name, UniqueName("fitting photo.jpg"))
}
