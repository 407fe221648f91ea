// Package ident defines resource identifiers and their name grammar.
package ident

// Identifier addresses one resource within a pack: a namespace plus a
// slash-separated path below it, e.g. {"base", "textures/stone.png"}.
//
// Identifiers are plain values compared structurally. No normalization is
// ever applied: there is no case folding and no resolution of "." or ".."
// segments. Validity is purely character-class based.
type Identifier struct {
	// Namespace is the top-level grouping directory under a type's root.
	Namespace string

	// Path is the file path below the namespace, using "/" as the
	// separator regardless of platform.
	Path string
}

// String renders the identifier in "namespace:path" form.
func (id Identifier) String() string {
	return id.Namespace + ":" + id.Path
}

// Valid reports whether both components satisfy the identifier grammar.
func (id Identifier) Valid() bool {
	return ValidNamespace(id.Namespace) && ValidPath(id.Path)
}

// ValidNamespace reports whether s consists solely of characters from
// [a-z0-9_.-].
//
// The empty string passes: there is nothing to reject. Callers that need
// to forbid empty namespaces must check for that separately.
func ValidNamespace(s string) bool {
	for i := 0; i < len(s); i++ {
		if !validNameByte(s[i]) {
			return false
		}
	}
	return true
}

// ValidPath reports whether s consists solely of characters from
// [a-z0-9_.-] plus "/" as the segment separator. It accepts both bare
// segments and full slash-separated paths; as with ValidNamespace, the
// empty string passes.
func ValidPath(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; !validNameByte(c) && c != '/' {
			return false
		}
	}
	return true
}

func validNameByte(c byte) bool {
	return c == '-' || c == '_' || c == '.' || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
