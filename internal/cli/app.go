package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
	"github.com/danielgomezobraztsov/web-presentation/internal/infra/config"
	"github.com/danielgomezobraztsov/web-presentation/internal/infra/jsonrequest"
	"github.com/danielgomezobraztsov/web-presentation/internal/infra/logger"
	"github.com/danielgomezobraztsov/web-presentation/internal/infra/render"
	"github.com/danielgomezobraztsov/web-presentation/internal/infra/services"
	"github.com/danielgomezobraztsov/web-presentation/internal/infra/yamlpage"
	"github.com/danielgomezobraztsov/web-presentation/internal/ports"
	"github.com/danielgomezobraztsov/web-presentation/internal/usecase"
)

type appCtx struct {
	root string
	cfg  domain.Config

	pages   ports.PageLoader
	decoder ports.RequestDecoder

	controller *usecase.ApplicationController
	renderer   *usecase.RenderPage
}

// loadApp wires the adapters. A project without webpres.yaml runs on defaults.
func loadApp(projectFlag string) (*appCtx, error) {
	root, err := resolveProjectRoot(projectFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	return newApp(root, cfg, logger.L()), nil
}

func newApp(root string, cfg domain.Config, log *slog.Logger) *appCtx {
	controller := usecase.NewApplicationController(
		services.NewUserService(),
		services.NewProductService(),
		usecase.WithLogger(log),
	)

	renderer := usecase.NewRenderPage(
		render.NewStage1(),
		render.NewStage2(),
		func() ports.Document { return render.NewHTMLDocument() },
		usecase.WithRenderLogger(log),
	)

	return &appCtx{
		root:       root,
		cfg:        cfg,
		pages:      yamlpage.NewLoader(yamlpage.WithPagesDir(cfg.Paths.PagesDir)),
		decoder:    jsonrequest.NewDecoder(),
		controller: controller,
		renderer:   renderer,
	}
}

func resolveProjectRoot(projectFlag string) (string, error) {
	p := strings.TrimSpace(projectFlag)
	if p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", fmt.Errorf("invalid project path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	if root, err := config.NewFinder().FindRoot(wd); err == nil {
		return root, nil
	}
	return wd, nil
}

func resolvePagePath(app *appCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("page is required (use --page)")
	}

	// If arg looks like a path (contains separators), resolve relative to project root.
	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(app.root, p)
		}
		return filepath.Clean(p), nil
	}

	pagesDir := filepath.Join(app.root, app.cfg.Paths.PagesDir)

	if hasYAMLExt(in) {
		p := filepath.Join(pagesDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(pagesDir, in+ext)
		if fileExists(p) {
			return p, nil
		}
	}

	// As a last resort: match by page "name" field.
	refs, err := app.pages.ListPages(app.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", &domain.OpError{
		Op:   "cli.resolve_page",
		Kind: domain.KindNotFound,
		Path: pagesDir,
		Err:  fmt.Errorf("page %q: %w", in, domain.ErrNotFound),
	}
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
