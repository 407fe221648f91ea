package respack

import (
	"fmt"
	"iter"

	"github.com/meigma/respack/internal/scan"
)

// Find enumerates resources of type t under namespace, starting at the
// slash-separated path prefix start ("" for the whole namespace), and
// returns the identifiers for which match returns true. A nil match
// accepts everything.
//
// Identifiers are relative to the namespace root, not to start: a file at
// <root>/ns/a/b.txt found with start "a" is reported as (ns, "a/b.txt").
// Result order is walk order and not guaranteed stable; each identifier
// appears at most once.
//
// An unknown type or a start prefix that is not an existing directory
// yields an empty result with a nil error. Subtrees and files with names
// outside the identifier grammar are skipped with a logged warning. Any
// I/O failure during the walk aborts the whole call.
func (p *Pack) Find(t Type, namespace, start string, match func(Identifier) bool) ([]Identifier, error) {
	root, ok := p.roots[t]
	if !ok {
		return nil, nil
	}
	var found []Identifier
	err := scan.Walk(root, namespace, start, p.log(), func(id Identifier) bool {
		if match == nil || match(id) {
			found = append(found, id)
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("find %s resources in pack %s: %w", t.ID, p.name, err)
	}
	return found, nil
}

// Resources returns an iterator over every resource of type t under
// namespace at or below start, with the same skip semantics as
// [Pack.Find].
//
// The sequence ends silently if the walk hits an I/O error; use Find when
// the error matters.
func (p *Pack) Resources(t Type, namespace, start string) iter.Seq[Identifier] {
	return func(yield func(Identifier) bool) {
		root, ok := p.roots[t]
		if !ok {
			return
		}
		_ = scan.Walk(root, namespace, start, p.log(), yield)
	}
}
