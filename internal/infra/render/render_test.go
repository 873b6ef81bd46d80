package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
)

func TestStage1(t *testing.T) {
	s := NewStage1()
	artist := domain.Artist{Name: "X"}

	if got := s.RenderArtist(artist); got != "Artist: X" {
		t.Fatalf("RenderArtist = %q", got)
	}
	if got := s.RenderAlbum(domain.Album{Artist: &artist}); got != "Album by X" {
		t.Fatalf("RenderAlbum = %q", got)
	}
}

func TestStage2(t *testing.T) {
	s := NewStage2()
	field := domain.Field{Content: "Y"}

	if got := s.RenderField(field); got != "<span>Y</span>" {
		t.Fatalf("RenderField = %q", got)
	}
	if got := s.RenderScreen(domain.Screen{Field: &field}); got != "<div>Y</div>" {
		t.Fatalf("RenderScreen = %q", got)
	}
}

func TestStagesShareReferencedEntities(t *testing.T) {
	artist := &domain.Artist{Name: "The Beatles"}
	field := &domain.Field{Content: "Abbey Road"}

	got := []string{
		NewStage1().RenderAlbum(domain.Album{Artist: artist}),
		NewStage1().RenderArtist(*artist),
		NewStage2().RenderScreen(domain.Screen{Field: field}),
		NewStage2().RenderField(*field),
	}
	want := []string{
		"Album by The Beatles",
		"Artist: The Beatles",
		"<div>Abbey Road</div>",
		"<span>Abbey Road</span>",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fragments mismatch (-want +got):\n%s", diff)
	}
}

func TestStage2DoesNotEscape(t *testing.T) {
	got := NewStage2().RenderField(domain.Field{Content: "<b>&</b>"})
	if got != "<span><b>&</b></span>" {
		t.Fatalf("expected raw content, got %q", got)
	}
}

func TestHTMLDocumentEmpty(t *testing.T) {
	d := NewHTMLDocument()
	if got := d.Render(); got != "<html><body></body></html>" {
		t.Fatalf("Render = %q", got)
	}
}

func TestHTMLDocumentOrderAndDuplicates(t *testing.T) {
	d := NewHTMLDocument()
	for _, f := range []string{"a", "b", "a", "c"} {
		d.AddContent(f)
	}

	want := "<html><body>abac</body></html>"
	if got := d.Render(); got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
	if got := d.Render(); got != want {
		t.Fatalf("second Render = %q, want %q", got, want)
	}
}

func TestHTMLDocumentReflectsLaterAppends(t *testing.T) {
	d := NewHTMLDocument()
	d.AddContent("a")
	_ = d.Render()
	d.AddContent("")
	d.AddContent("b")

	if got := d.Render(); got != "<html><body>ab</body></html>" {
		t.Fatalf("Render = %q", got)
	}
}
