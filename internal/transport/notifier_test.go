package transport

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

func TestWailsNotifier_ShowError(t *testing.T) {
	var shown []wailsruntime.MessageDialogOptions
	notifier := NewWailsNotifier(context.Background(), zerolog.Nop())
	notifier.show = func(_ context.Context, options wailsruntime.MessageDialogOptions) (string, error) {
		shown = append(shown, options)
		return "", nil
	}

	notifier.ShowError("Preferences", "disk full")

	if assert.Len(t, shown, 1) {
		assert.Equal(t, wailsruntime.ErrorDialog, shown[0].Type)
		assert.Equal(t, "Preferences", shown[0].Title)
		assert.Equal(t, "disk full", shown[0].Message)
	}
}

func TestWailsNotifier_DialogFailureIsSwallowed(t *testing.T) {
	notifier := NewWailsNotifier(context.Background(), zerolog.Nop())
	notifier.show = func(context.Context, wailsruntime.MessageDialogOptions) (string, error) {
		return "", errors.New("no window")
	}

	assert.NotPanics(t, func() { notifier.ShowError("Preferences", "disk full") })
}
