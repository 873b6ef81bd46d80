// Package yamlpage loads page definitions from YAML files.
package yamlpage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
	"github.com/danielgomezobraztsov/web-presentation/internal/ports"
)

type Loader struct {
	pagesDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{pagesDir: "pages"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithPagesDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.pagesDir = dir
		}
	}
}

var _ ports.PageLoader = (*Loader)(nil)

func (l *Loader) LoadPage(path string) (domain.Page, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Page{}, &domain.OpError{
			Op:   "yamlpage.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yp yamlPage
	if err := yaml.Unmarshal(b, &yp); err != nil {
		return domain.Page{}, &domain.OpError{
			Op:   "yamlpage.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, yp)
}

func (l *Loader) ListPages(root string) ([]domain.PageRef, error) {
	dir := filepath.Join(root, l.pagesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlpage.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.PageRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readPageName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.PageRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readPageName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}

type yamlPage struct {
	Name   string   `yaml:"name"`
	Artist *string  `yaml:"artist"`
	Field  *string  `yaml:"field"`
	Layout []string `yaml:"layout"`
}

func mapAndValidate(path string, yp yamlPage) (domain.Page, error) {
	page := domain.Page{Name: strings.TrimSpace(yp.Name)}
	if page.Name == "" {
		page.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if yp.Artist != nil {
		page.Artist = &domain.Artist{Name: *yp.Artist}
		page.Album = domain.Album{Artist: page.Artist}
	}
	if yp.Field != nil {
		page.Field = &domain.Field{Content: *yp.Field}
		page.Screen = domain.Screen{Field: page.Field}
	}

	for i, raw := range yp.Layout {
		kind, err := domain.ParseBlockKind(raw)
		if err != nil {
			return domain.Page{}, invalidField(path, fmt.Sprintf("layout[%d]", i), err.Error())
		}
		page.Layout = append(page.Layout, kind)
	}

	for i, b := range page.Blocks() {
		switch b {
		case domain.BlockAlbum, domain.BlockArtist:
			if page.Artist == nil {
				return domain.Page{}, invalidField(path, "artist", fmt.Sprintf("required by layout[%d] (%s)", i, b))
			}
		case domain.BlockScreen, domain.BlockField:
			if page.Field == nil {
				return domain.Page{}, invalidField(path, "field", fmt.Sprintf("required by layout[%d] (%s)", i, b))
			}
		}
	}

	return page, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlpage.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
