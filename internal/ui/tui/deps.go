package tui

import (
	"log/slog"

	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
)

// RequestHandler is the part of the application controller the TUI drives.
type RequestHandler interface {
	HandleRequest(raw domain.RawRequest) (string, error)
}

// PageRenderer is the part of the render use case the TUI drives.
type PageRenderer interface {
	Execute(page domain.Page) (string, error)
	Fragments(page domain.Page) ([]string, error)
}

type Deps struct {
	Controller RequestHandler
	Renderer   PageRenderer

	Logger *slog.Logger
	Debug  bool
}
