package transport

import (
	"context"

	"github.com/rs/zerolog"
	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

type messageDialogFunc func(ctx context.Context, options wailsruntime.MessageDialogOptions) (string, error)

// WailsNotifier shows store failures in a native error dialog
type WailsNotifier struct {
	ctx    context.Context
	logger zerolog.Logger
	show   messageDialogFunc
}

func NewWailsNotifier(ctx context.Context, logger zerolog.Logger) *WailsNotifier {
	return &WailsNotifier{
		ctx:    ctx,
		logger: logger.With().Str("component", "notifier").Logger(),
		show:   wailsruntime.MessageDialog,
	}
}

func (n *WailsNotifier) ShowError(title, message string) {
	_, err := n.show(n.ctx, wailsruntime.MessageDialogOptions{
		Type:    wailsruntime.ErrorDialog,
		Title:   title,
		Message: message,
	})
	if err != nil {
		n.logger.Warn().Err(err).Str("title", title).Msg("Failed to show error dialog")
	}
}
