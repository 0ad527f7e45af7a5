package transport

import (
	"context"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

type dialogsHandler struct {
	ctx context.Context
}

func NewDialogsHandler(ctx context.Context) DialogHandler {
	return &dialogsHandler{
		ctx: ctx,
	}
}

func (h *dialogsHandler) OpenDirectoryDialog(title, defaultDirectory string) (string, error) {
	selection, err := wailsruntime.OpenDirectoryDialog(h.ctx, wailsruntime.OpenDialogOptions{
		Title:                title,
		DefaultDirectory:     defaultDirectory,
		CanCreateDirectories: true,
	})

	if err != nil {
		return "", err
	}

	return selection, nil
}

func (h *dialogsHandler) OpenFileDialog(title, defaultDirectory string, filter FileFilter) (string, error) {
	selection, err := wailsruntime.OpenFileDialog(h.ctx, wailsruntime.OpenDialogOptions{
		Title:            title,
		DefaultDirectory: defaultDirectory,
		Filters:          wailsFilters(filter),
	})

	if err != nil {
		return "", err
	}

	return selection, nil
}

func (h *dialogsHandler) ShowSaveDialog(title, defaultDirectory, filename string, filter FileFilter) (string, error) {
	selection, err := wailsruntime.SaveFileDialog(h.ctx, wailsruntime.SaveDialogOptions{
		Title:            title,
		DefaultDirectory: defaultDirectory,
		DefaultFilename:  filename,
		Filters:          wailsFilters(filter),
	})

	if err != nil {
		return "", err
	}

	return selection, nil
}

func wailsFilters(filter FileFilter) []wailsruntime.FileFilter {
	if filter.Pattern == "" {
		return nil
	}
	return []wailsruntime.FileFilter{
		{
			DisplayName: filter.DisplayName,
			Pattern:     filter.Pattern,
		},
	}
}
