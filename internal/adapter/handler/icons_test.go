package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srgjo27/epic_events/internal/core/domain"
)

func TestRenderIcon(t *testing.T) {
	for tag := range iconRenderers {
		got := string(renderIcon(tag, 24))
		assert.True(t, strings.HasPrefix(got, "<svg"), tag)
		assert.Contains(t, got, `width="24"`, tag)
	}

	assert.Equal(t, unknownIcon(16), renderIcon(domain.IconUnknown, 16))
	assert.Equal(t, unknownIcon(16), renderIcon("tiktok", 16))
}
