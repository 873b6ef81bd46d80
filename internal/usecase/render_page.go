package usecase

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
	"github.com/danielgomezobraztsov/web-presentation/internal/ports"
)

// RenderPage runs the two rendering stages over a page and accumulates the
// fragments into a fresh document.
type RenderPage struct {
	entities ports.EntityRenderer
	screens  ports.ScreenRenderer
	newDoc   func() ports.Document
	log      *slog.Logger
}

type RenderOption func(*RenderPage)

func WithRenderLogger(l *slog.Logger) RenderOption {
	return func(uc *RenderPage) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewRenderPage(er ports.EntityRenderer, sr ports.ScreenRenderer, newDoc func() ports.Document, opts ...RenderOption) *RenderPage {
	uc := &RenderPage{
		entities: er,
		screens:  sr,
		newDoc:   newDoc,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute validates the page and returns the rendered document.
func (uc *RenderPage) Execute(page domain.Page) (string, error) {
	fragments, err := uc.Fragments(page)
	if err != nil {
		return "", err
	}

	doc := uc.newDoc()
	for _, f := range fragments {
		doc.AddContent(f)
	}
	out := doc.Render()

	uc.log.Info("page.rendered", "page", page.Name, "fragments", len(fragments), "bytes", len(out))
	return out, nil
}

// Fragments returns the page fragments in layout order, without the envelope.
func (uc *RenderPage) Fragments(page domain.Page) ([]string, error) {
	if err := page.Validate(); err != nil {
		uc.log.Warn("page.invalid", "page", page.Name, "error", err.Error())
		return nil, err
	}

	blocks := page.Blocks()
	out := make([]string, 0, len(blocks))
	for i, b := range blocks {
		switch b {
		case domain.BlockAlbum:
			out = append(out, uc.entities.RenderAlbum(page.Album))
		case domain.BlockArtist:
			out = append(out, uc.entities.RenderArtist(*page.Artist))
		case domain.BlockScreen:
			out = append(out, uc.screens.RenderScreen(page.Screen))
		case domain.BlockField:
			out = append(out, uc.screens.RenderField(*page.Field))
		default:
			return nil, &domain.OpError{
				Op:   "render.page",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("layout[%d]: unknown block %q: %w", i, b, domain.ErrInvalidConfig),
			}
		}
	}
	return out, nil
}
