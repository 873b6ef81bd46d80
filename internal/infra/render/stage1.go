// Package render implements the two rendering stages and the HTML document
// that accumulates their fragments.
package render

import (
	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
	"github.com/danielgomezobraztsov/web-presentation/internal/ports"
)

// Stage1 renders domain entities to plain text.
// Album.Artist must be non-nil; callers validate pages beforehand.
type Stage1 struct{}

func NewStage1() Stage1 { return Stage1{} }

var _ ports.EntityRenderer = Stage1{}

func (Stage1) RenderAlbum(album domain.Album) string {
	return "Album by " + album.Artist.Name
}

func (Stage1) RenderArtist(artist domain.Artist) string {
	return "Artist: " + artist.Name
}
