package domain

import (
	"fmt"
	"strings"
)

// BlockKind selects which renderer produces a fragment of a page.
type BlockKind string

const (
	BlockAlbum  BlockKind = "album"
	BlockArtist BlockKind = "artist"
	BlockScreen BlockKind = "screen"
	BlockField  BlockKind = "field"
)

// DefaultLayout is the fragment order used when a page does not set one.
var DefaultLayout = []BlockKind{BlockAlbum, BlockArtist, BlockScreen, BlockField}

// Page groups the entities of one document and the order their fragments
// are appended in.
type Page struct {
	Name string

	Artist *Artist
	Album  Album

	Field  *Field
	Screen Screen

	// Layout may repeat blocks. Empty means DefaultLayout.
	Layout []BlockKind
}

// PageRef is a lightweight reference to a page file on disk.
type PageRef struct {
	Name string
	Path string
}

// NewPage wires one artist into the album and artist blocks and one field
// into the screen and field blocks.
func NewPage(name, artistName, fieldContent string) Page {
	artist := &Artist{Name: artistName}
	field := &Field{Content: fieldContent}
	return Page{
		Name:   name,
		Artist: artist,
		Album:  Album{Artist: artist},
		Field:  field,
		Screen: Screen{Field: field},
	}
}

// Blocks returns the effective layout.
func (p Page) Blocks() []BlockKind {
	if len(p.Layout) == 0 {
		return DefaultLayout
	}
	return p.Layout
}

// Validate checks that every block in the layout can be rendered.
func (p Page) Validate() error {
	for i, b := range p.Blocks() {
		var err error
		switch b {
		case BlockAlbum:
			err = p.Album.Validate()
		case BlockArtist:
			if p.Artist == nil {
				err = missingRef("artist")
			}
		case BlockScreen:
			err = p.Screen.Validate()
		case BlockField:
			if p.Field == nil {
				err = missingRef("field")
			}
		default:
			return &OpError{
				Op:   "page.validate",
				Kind: KindInvalidConfig,
				Err:  fmt.Errorf("layout[%d]: unknown block %q: %w", i, b, ErrInvalidConfig),
			}
		}
		if err != nil {
			return fmt.Errorf("page %q layout[%d]: %w", p.Name, i, err)
		}
	}
	return nil
}

// ParseBlockKind accepts block names case-insensitively.
func ParseBlockKind(s string) (BlockKind, error) {
	k := BlockKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case BlockAlbum, BlockArtist, BlockScreen, BlockField:
		return k, nil
	default:
		return "", fmt.Errorf("unknown block %q (expected album|artist|screen|field): %w", s, ErrInvalidConfig)
	}
}

func missingRef(what string) error {
	return &OpError{
		Op:   "page.validate",
		Kind: KindMissingReference,
		Err:  fmt.Errorf("page has no %s: %w", what, ErrMissingReference),
	}
}
