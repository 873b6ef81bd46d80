package ports

import "github.com/danielgomezobraztsov/web-presentation/internal/domain"

// PageLoader loads pages from a source (e.g., filesystem).
type PageLoader interface {
	LoadPage(path string) (domain.Page, error)
	ListPages(root string) ([]domain.PageRef, error)
}
