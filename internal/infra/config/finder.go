// Package config locates and loads webpres.yaml.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
	"github.com/danielgomezobraztsov/web-presentation/internal/ports"
)

// FileName is the project configuration file searched for by Finder.
const FileName = "webpres.yaml"

// Finder locates a project root by searching for webpres.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "webpres.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: FileName}
}

var _ ports.ConfigLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "config.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "config.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		if _, err := os.Stat(filepath.Join(cur, f.ConfigFile)); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "config.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
