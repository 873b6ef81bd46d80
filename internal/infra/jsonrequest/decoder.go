// Package jsonrequest decodes JSON request bodies into raw requests.
package jsonrequest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
	"github.com/danielgomezobraztsov/web-presentation/internal/ports"
)

// DefaultPaths maps raw request keys to the JSONPath expressions that read them.
var DefaultPaths = map[string]string{
	domain.KeyType:      "$.type",
	domain.KeyAction:    "$.action",
	domain.KeyUserID:    "$.user_id",
	domain.KeyProductID: "$.product_id",
}

type Decoder struct {
	paths map[string]string
}

type Option func(*Decoder)

// WithPath reads key from a different location, e.g. WithPath("user_id", "$.user.id").
func WithPath(key, expr string) Option {
	return func(d *Decoder) { d.paths[key] = expr }
}

func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{paths: make(map[string]string, len(DefaultPaths))}
	for k, v := range DefaultPaths {
		d.paths[k] = v
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var _ ports.RequestDecoder = (*Decoder)(nil)

// Decode reads a JSON object and picks the known keys out of it.
// Keys whose path resolves to nothing are left out, so validation can tell
// "absent" from "present but wrong".
func (d *Decoder) Decode(body []byte) (domain.RawRequest, error) {
	doc, err := parseJSON(body)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "jsonrequest.decode",
			Kind: domain.KindInvalidRequest,
			Err:  fmt.Errorf("body is not valid JSON: %v: %w", err, domain.ErrInvalidRequest),
		}
	}
	if _, ok := doc.(map[string]any); !ok {
		return nil, &domain.OpError{
			Op:   "jsonrequest.decode",
			Kind: domain.KindInvalidRequest,
			Err:  fmt.Errorf("body must be a JSON object, got %T: %w", doc, domain.ErrInvalidRequest),
		}
	}

	raw := domain.RawRequest{}
	for key, expr := range d.paths {
		val, getErr := jsonpath.Get(expr, doc)
		if getErr != nil {
			// unknown key / index out of range: treat as absent
			continue
		}
		if isMultiMatch(expr) {
			val = unwrapSingle(val)
		}
		if val == nil {
			continue
		}
		raw[key] = val
	}
	return raw, nil
}

func parseJSON(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errors.New("empty body")
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// isMultiMatch reports whether expr can select several nodes (wildcards,
// filters, recursive descent, unions). Only those results are collapsed; a
// literal array under a plain path is kept so validation rejects it.
func isMultiMatch(expr string) bool {
	return strings.Contains(expr, "*") ||
		strings.Contains(expr, "?(") ||
		strings.Contains(expr, "..") ||
		strings.Contains(expr, ",")
}

// A single match is the value; no match is absent.
func unwrapSingle(v any) any {
	arr, ok := v.([]any)
	if !ok {
		return v
	}
	switch len(arr) {
	case 0:
		return nil
	case 1:
		return arr[0]
	default:
		return v
	}
}
