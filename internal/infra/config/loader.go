package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
)

// Load reads webpres.yaml from root and applies it on top of the defaults.
// When the file is missing the defaults are returned along with a not_found
// error. Any other read failure is invalid_config.
func Load(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, FileName)
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindInvalidConfig
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if y.Webpres.Log.Debug != nil {
		cfg.Log.Debug = *y.Webpres.Log.Debug
	}
	if f := strings.ToLower(strings.TrimSpace(y.Webpres.Output.Format)); f != "" {
		if f != "text" && f != "json" {
			return cfg, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("field output.format: unsupported format %q (expected text|json): %w", f, domain.ErrInvalidConfig),
			}
		}
		cfg.Output.Format = f
	}
	if y.Webpres.Paths.PagesDir != "" {
		cfg.Paths.PagesDir = y.Webpres.Paths.PagesDir
	}

	return cfg, nil
}

type yamlConfig struct {
	Webpres struct {
		Log struct {
			Debug *bool `yaml:"debug"`
		} `yaml:"log"`

		Output struct {
			Format string `yaml:"format"`
		} `yaml:"output"`

		Paths struct {
			PagesDir string `yaml:"pages_dir"`
		} `yaml:"paths"`
	} `yaml:"webpres"`
}
