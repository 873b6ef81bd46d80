package domain

import "fmt"

// Artist is a domain entity rendered by the first stage.
type Artist struct {
	Name string
}

// Album references (does not own) its Artist.
type Album struct {
	Artist *Artist
}

// Validate reports a missing artist reference.
func (a Album) Validate() error {
	if a.Artist == nil {
		return &OpError{
			Op:   "album.validate",
			Kind: KindMissingReference,
			Err:  fmt.Errorf("album has no artist: %w", ErrMissingReference),
		}
	}
	return nil
}

// Field is a presentation entity rendered by the second stage.
type Field struct {
	Content string
}

// Screen references (does not own) its Field.
type Screen struct {
	Field *Field
}

// Validate reports a missing field reference.
func (s Screen) Validate() error {
	if s.Field == nil {
		return &OpError{
			Op:   "screen.validate",
			Kind: KindMissingReference,
			Err:  fmt.Errorf("screen has no field: %w", ErrMissingReference),
		}
	}
	return nil
}
