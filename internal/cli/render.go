package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
	"github.com/danielgomezobraztsov/web-presentation/internal/usecase"
)

func renderCmd() *cobra.Command {
	var project string
	var page string
	var artist string
	var field string
	var layout string
	var fragments bool

	c := &cobra.Command{
		Use:   "render",
		Short: "Render a page through both stages into an HTML document",
		Example: `  webpres render
  webpres render --page beatles
  webpres render --artist "The Beatles" --field "Field Content" --layout album,field`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(project)
			if err != nil {
				return err
			}

			p, err := buildPage(cmd, app, page, artist, field)
			if err != nil {
				return err
			}

			if strings.TrimSpace(layout) != "" {
				p.Layout, err = parseLayout(layout)
				if err != nil {
					return err
				}
			}

			if fragments {
				parts, err := app.renderer.Fragments(p)
				if err != nil {
					return err
				}
				return printLines(cmd.OutOrStdout(), parts)
			}

			html, err := app.renderer.Execute(p)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
			return err
		},
	}

	c.Flags().StringVarP(&project, "project", "p", "", "Project root (optional; autodetected if omitted)")
	c.Flags().StringVar(&page, "page", "", "Page name or path (resolved under the pages dir)")
	c.Flags().StringVar(&artist, "artist", "", "Artist name for an ad-hoc page")
	c.Flags().StringVar(&field, "field", "", "Field content for an ad-hoc page")
	c.Flags().StringVar(&layout, "layout", "", "Comma separated blocks: album,artist,screen,field")
	c.Flags().BoolVar(&fragments, "fragments", false, "Print one fragment per line instead of the document")

	c.MarkFlagsMutuallyExclusive("page", "artist")
	c.MarkFlagsMutuallyExclusive("page", "field")
	return c
}

// buildPage loads --page, builds an ad-hoc page from --artist/--field, or
// falls back to the demo page.
func buildPage(cmd *cobra.Command, app *appCtx, page, artist, field string) (domain.Page, error) {
	if strings.TrimSpace(page) != "" {
		path, err := resolvePagePath(app, page)
		if err != nil {
			return domain.Page{}, err
		}
		return app.pages.LoadPage(path)
	}

	hasArtist := cmd.Flags().Changed("artist")
	hasField := cmd.Flags().Changed("field")
	if !hasArtist && !hasField {
		return usecase.DemoPage(), nil
	}

	p := domain.Page{Name: "adhoc"}
	if hasArtist {
		p.Artist = &domain.Artist{Name: artist}
		p.Album = domain.Album{Artist: p.Artist}
	}
	if hasField {
		p.Field = &domain.Field{Content: field}
		p.Screen = domain.Screen{Field: p.Field}
	}
	return p, nil
}

func parseLayout(s string) ([]domain.BlockKind, error) {
	var out []domain.BlockKind
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := domain.ParseBlockKind(part)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func printLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
