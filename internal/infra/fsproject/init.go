// Package fsproject scaffolds a webpres project on disk.
package fsproject

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
	"github.com/danielgomezobraztsov/web-presentation/internal/ports"
)

//go:embed templates
var templatesFS embed.FS

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ProjectInitializer = (*Initializer)(nil)

// Init writes webpres.yaml and a sample page under spec.Root. Existing files
// are kept unless force is set.
func (i *Initializer) Init(spec domain.ProjectSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	if err := os.MkdirAll(root, 0o755); err != nil {
		return opErr(root, err)
	}
	if err := ensureGitignore(root); err != nil {
		return opErr(filepath.Join(root, ".gitignore"), err)
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		if rel == "pages/beatles.yaml" && spec.PagesDir != "" {
			rel = filepath.Join(spec.PagesDir, "beatles.yaml")
		}
		dst := filepath.Join(root, filepath.FromSlash(rel))

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return opErr(dst, err)
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return opErr(dst, err)
		}
		return nil
	})
}

func opErr(path string, err error) error {
	return &domain.OpError{
		Op:   "fsproject.init",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  err,
	}
}

// ensureGitignore keeps local logs out of version control.
func ensureGitignore(root string) error {
	const header = "# webpres"
	entries := []string{
		".webpres/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
