package render

import (
	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
	"github.com/danielgomezobraztsov/web-presentation/internal/ports"
)

// Stage2 renders presentation entities to markup. Content is not escaped.
// Screen.Field must be non-nil.
type Stage2 struct{}

func NewStage2() Stage2 { return Stage2{} }

var _ ports.ScreenRenderer = Stage2{}

func (Stage2) RenderScreen(screen domain.Screen) string {
	return "<div>" + screen.Field.Content + "</div>"
}

func (Stage2) RenderField(field domain.Field) string {
	return "<span>" + field.Content + "</span>"
}
