package respack

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/meigma/respack/internal/scan"
)

// Interface compliance.
var _ io.Closer = (*Pack)(nil)

// Pack is a read-only view of one resource pack: a set of typed roots on
// disk plus the namespaces discovered under them.
//
// The root table and namespace index are built once at construction and
// never refreshed; a Pack is a point-in-time snapshot of the tree layout
// (file contents are always read live). All methods are safe for
// concurrent use.
type Pack struct {
	name       string
	roots      map[Type]string
	trueRoot   string
	namespaces map[Type]map[string]struct{}
	closer     func() error
	closeOnce  sync.Once
	logger     *slog.Logger
}

// log returns the logger, falling back to a discard logger if nil.
func (p *Pack) log() *slog.Logger {
	if p.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.logger
}

// SingleType creates a pack carrying resources of exactly one type, rooted
// directly at dir. Root-level files (see [Pack.OpenRoot]) are resolved
// against the same directory.
//
// The directory not existing is not an error; such a pack simply has no
// namespaces.
func SingleType(t Type, dir, name string, opts ...Option) (*Pack, error) {
	return newPack(map[Type]string{t: dir}, dir, name, opts)
}

// MultiType creates a pack rooted at dir carrying every supplied type,
// each rooted at dir/<type.Dir>. Root-level files are resolved against
// dir itself.
//
// Types whose subdirectory does not exist are retained with an empty
// namespace set.
func MultiType(dir, name string, types []Type, opts ...Option) (*Pack, error) {
	roots := make(map[Type]string, len(types))
	for _, t := range types {
		roots[t] = filepath.Join(dir, t.Dir)
	}
	return newPack(roots, dir, name, opts)
}

// newPack builds the aggregate and eagerly scans each root for its
// namespaces. Roots are scanned concurrently; each type's set is written
// by exactly one goroutine. A listing failure aborts construction.
func newPack(roots map[Type]string, trueRoot, name string, opts []Option) (*Pack, error) {
	p := &Pack{
		name:     name,
		roots:    roots,
		trueRoot: trueRoot,
	}
	for _, opt := range opts {
		opt(p)
	}

	types := make([]Type, 0, len(roots))
	for t := range roots {
		types = append(types, t)
	}
	sets := make([]map[string]struct{}, len(types))

	var g errgroup.Group
	for i, t := range types {
		g.Go(func() error {
			set, err := scan.Namespaces(roots[t], p.log())
			if err != nil {
				return err
			}
			sets[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("respack: build namespace index for pack %s: %w", name, err)
	}

	p.namespaces = make(map[Type]map[string]struct{}, len(types))
	for i, t := range types {
		p.namespaces[t] = sets[i]
	}
	return p, nil
}

// Name returns the pack's human-readable label.
func (p *Pack) Name() string {
	return p.name
}

// Contains reports whether the pack carries the identified resource: the
// type must have a root and the resolved path must be a regular file.
func (p *Pack) Contains(t Type, id Identifier) bool {
	root, ok := p.roots[t]
	if !ok {
		return false
	}
	info, err := os.Stat(locate(root, id))
	return err == nil && info.Mode().IsRegular()
}

// Open opens the identified resource for reading. It returns
// [ErrTypeNotSupported] if the pack has no root for t; a missing or
// unreadable file surfaces the underlying filesystem error, matchable
// with errors.Is against fs.ErrNotExist.
func (p *Pack) Open(t Type, id Identifier) (io.ReadCloser, error) {
	root, ok := p.roots[t]
	if !ok {
		return nil, fmt.Errorf("%w: pack %s has no %s resources", ErrTypeNotSupported, p.name, t.ID)
	}
	f, err := os.Open(locate(root, id))
	if err != nil {
		return nil, fmt.Errorf("open %s resource %s: %w", t.ID, id, err)
	}
	return f, nil
}

// OpenRoot opens a file addressed relative to the pack's true root, such
// as the pack descriptor. The name may contain "/" separators.
func (p *Pack) OpenRoot(name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(p.trueRoot, filepath.FromSlash(name)))
	if err != nil {
		return nil, fmt.Errorf("open root file %s in pack %s: %w", name, p.name, err)
	}
	return f, nil
}

// Namespaces returns the namespaces discovered under t's root at
// construction time, sorted, as a fresh slice. A type the pack does not
// carry yields an empty result.
func (p *Pack) Namespaces(t Type) []string {
	set := p.namespaces[t]
	out := make([]string, 0, len(set))
	for ns := range set {
		out = append(out, ns)
	}
	slices.Sort(out)
	return out
}

// HasNamespace reports whether namespace was discovered under t's root.
func (p *Pack) HasNamespace(t Type, namespace string) bool {
	_, ok := p.namespaces[t][namespace]
	return ok
}

// Close runs the pack's teardown action. The action runs at most once no
// matter how many times or from how many goroutines Close is called; its
// error, if any, is returned from the invoking call and later calls
// return nil.
func (p *Pack) Close() error {
	var err error
	p.closeOnce.Do(func() {
		if p.closer != nil {
			err = p.closer()
		}
	})
	return err
}

// locate resolves an identifier below a type root. The identifier's path
// keeps "/" separators; they are converted for the platform here.
func locate(root string, id Identifier) string {
	return filepath.Join(root, id.Namespace, filepath.FromSlash(id.Path))
}
