package usecase

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
	"github.com/danielgomezobraztsov/web-presentation/internal/ports"
)

type InitProject struct {
	initializer ports.ProjectInitializer
}

func NewInitProject(initializer ports.ProjectInitializer) *InitProject {
	return &InitProject{initializer: initializer}
}

// Execute scaffolds a project at root. pagesDir must stay inside root.
func (uc *InitProject) Execute(root, pagesDir string, force bool) error {
	pagesDir = strings.TrimSpace(pagesDir)
	if pagesDir != "" && (filepath.IsAbs(pagesDir) || strings.HasPrefix(filepath.Clean(pagesDir), "..")) {
		return &domain.OpError{
			Op:   "usecase.init_project",
			Kind: domain.KindInvalidConfig,
			Path: pagesDir,
			Err:  fmt.Errorf("pages dir must be relative to the project: %w", domain.ErrInvalidConfig),
		}
	}
	return uc.initializer.Init(domain.ProjectSpec{Root: root, PagesDir: pagesDir}, force)
}
