package domain

// Config represents the configuration loaded from webpres.yaml.
type Config struct {
	Log    LogConfig
	Output OutputConfig
	Paths  PathsConfig
}

type LogConfig struct {
	Debug bool
}

type OutputConfig struct {
	// Format is "text" or "json".
	Format string
}

type PathsConfig struct {
	PagesDir string
}

// DefaultConfig provides sane defaults if webpres.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Log:    LogConfig{Debug: false},
		Output: OutputConfig{Format: "text"},
		Paths:  PathsConfig{PagesDir: "pages"},
	}
}

// ProjectSpec describes a project to scaffold.
type ProjectSpec struct {
	Root string
	// PagesDir overrides where the sample page is written (relative to Root).
	PagesDir string
}
