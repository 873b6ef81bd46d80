package ports

import "github.com/danielgomezobraztsov/web-presentation/internal/domain"

// ProjectInitializer scaffolds a project (config file and a sample page).
type ProjectInitializer interface {
	Init(spec domain.ProjectSpec, force bool) error
}
