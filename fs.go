package respack

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FS returns an fs.FS view of one namespace under t's root, for interop
// with standard library tooling (fs.WalkDir, fs.Glob, template loading).
//
// The view reads the live filesystem and applies no identifier-grammar
// filtering; it is a raw window below the namespace directory. Returns
// [ErrTypeNotSupported] if the pack has no root for t.
func (p *Pack) FS(t Type, namespace string) (fs.FS, error) {
	root, ok := p.roots[t]
	if !ok {
		return nil, fmt.Errorf("%w: pack %s has no %s resources", ErrTypeNotSupported, p.name, t.ID)
	}
	return os.DirFS(filepath.Join(root, namespace)), nil
}
