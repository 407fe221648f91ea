// Package mcmeta decodes pack descriptor files (pack.mcmeta).
//
// A descriptor is a JSON object of named sections. The "pack" section is
// mandatory and typed; other sections are kept raw for hosts to decode
// with [Section]. Comments and trailing commas are tolerated, since
// descriptors are commonly hand-edited.
//
// Decode satisfies the respack MetaReader contract:
//
//	meta, err := respack.ParseMetadata(p, mcmeta.Decode)
package mcmeta

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"
)

// ErrMissingSection is returned when a requested section, or the
// mandatory pack section, is absent from the descriptor.
var ErrMissingSection = errors.New("mcmeta: missing section")

// Pack is the descriptor's "pack" section.
type Pack struct {
	// Description is the pack's display description.
	Description string `json:"description"`

	// Format is the pack format version the pack targets.
	Format int `json:"pack_format"`
}

// File is a decoded descriptor.
type File struct {
	// Pack is the mandatory "pack" section.
	Pack Pack

	// Sections holds every section of the descriptor, raw, keyed by
	// name ("pack" included).
	Sections map[string]json.RawMessage
}

// Decode reads and decodes a descriptor stream.
func Decode(r io.Reader) (*File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("mcmeta: read descriptor: %w", err)
	}
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(jsonc.ToJSON(raw), &sections); err != nil {
		return nil, fmt.Errorf("mcmeta: decode descriptor: %w", err)
	}
	f := &File{Sections: sections}
	sec, ok := sections["pack"]
	if !ok {
		return nil, fmt.Errorf("%w: pack", ErrMissingSection)
	}
	if err := json.Unmarshal(sec, &f.Pack); err != nil {
		return nil, fmt.Errorf("mcmeta: decode pack section: %w", err)
	}
	return f, nil
}

// Section decodes the named section of a descriptor into T.
func Section[T any](f *File, name string) (T, error) {
	var out T
	sec, ok := f.Sections[name]
	if !ok {
		return out, fmt.Errorf("%w: %s", ErrMissingSection, name)
	}
	if err := json.Unmarshal(sec, &out); err != nil {
		return out, fmt.Errorf("mcmeta: decode %s section: %w", name, err)
	}
	return out, nil
}
