package transport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDialogsHandler(t *testing.T) {
	handler := NewDialogsHandler(context.Background())

	assert.NotNil(t, handler)
	assert.Implements(t, (*DialogHandler)(nil), handler)
}

func TestWailsFilters(t *testing.T) {
	assert.Nil(t, wailsFilters(FileFilter{}))

	filters := wailsFilters(FileFilter{DisplayName: "Schema files", Pattern: "*.xml"})
	if assert.Len(t, filters, 1) {
		assert.Equal(t, "Schema files", filters[0].DisplayName)
		assert.Equal(t, "*.xml", filters[0].Pattern)
	}
}
