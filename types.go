package respack

import "github.com/meigma/respack/internal/ident"

// Identifier addresses one resource within a type.
type Identifier = ident.Identifier

// Type identifies a caller-defined category of resources. The package
// never defines or limits type members; hosts supply their own.
//
// Types are plain comparable values: two types are the same key iff both
// fields match.
type Type struct {
	// ID is a stable tag naming the type in errors and diagnostics.
	ID string

	// Dir is the type's canonical subdirectory under a multi-type pack
	// root.
	Dir string
}

// ValidNamespace reports whether s is a well-formed namespace name:
// characters from [a-z0-9_.-] only. The empty string passes the grammar;
// see [Identifier].
func ValidNamespace(s string) bool {
	return ident.ValidNamespace(s)
}

// ValidPath reports whether s is a well-formed identifier path: the
// namespace alphabet plus "/" as the separator.
func ValidPath(s string) bool {
	return ident.ValidPath(s)
}
