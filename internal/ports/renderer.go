package ports

import "github.com/danielgomezobraztsov/web-presentation/internal/domain"

// EntityRenderer is the first stage: domain entities to plain-text fragments.
type EntityRenderer interface {
	RenderAlbum(album domain.Album) string
	RenderArtist(artist domain.Artist) string
}

// ScreenRenderer is the second stage: presentation entities to markup fragments.
type ScreenRenderer interface {
	RenderScreen(screen domain.Screen) string
	RenderField(field domain.Field) string
}

// Document accumulates fragments in append order.
type Document interface {
	AddContent(fragment string)
	Render() string
}
