package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
)

var (
	reLine  = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)
	reField = regexp.MustCompile(`\bfield\s+([a-z_]+)`)
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.Contains(oe.Op, "yamlpage") {
				return "Page not found"
			}
			return "Not found"

		case domain.KindMissingField:
			if f := extractField(err.Error()); f != "" {
				return "Missing field " + f
			}
			return "Missing field"

		case domain.KindInvalidRequest:
			return "Invalid request"

		case domain.KindUnsupportedRoute:
			return domain.InvalidRequestMessage

		case domain.KindMissingReference:
			return "Page is missing a referenced entity"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			return "Invalid config"
		}
	}

	return "Unexpected error (see logs)"
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

func extractField(s string) string {
	m := reField.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
