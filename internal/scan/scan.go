// Package scan implements the filesystem discovery behind a pack: the
// one-shot namespace listing performed at construction time and the pruned
// recursive walk behind resource enumeration.
//
// Both operations treat malformed names as diagnostics, not failures: an
// invalid namespace or file name is logged at Warn and excluded, an invalid
// directory name prunes its whole subtree. Only genuine I/O failures are
// surfaced as errors.
package scan

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/meigma/respack/internal/ident"
)

// Namespaces lists the immediate child directories of root whose names
// satisfy the namespace grammar.
//
// A root that is missing, or that is not a directory, yields an empty set;
// that is a normal state for a pack that carries no resources of a type.
// A failed directory listing is an error. Invalid names are logged and
// excluded from the set.
func Namespaces(root string, logger *slog.Logger) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return set, nil
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("list namespaces under %s: %w", root, err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if !ident.ValidNamespace(name) {
			logger.Warn("ignoring invalid namespace",
				slog.String("namespace", name),
				slog.String("root", root))
			continue
		}
		set[name] = struct{}{}
	}
	return set, nil
}

// Walk traverses the tree rooted at typeRoot/namespace/start depth-first
// and reports every regular file with a valid name as an identifier whose
// path is relative to typeRoot/namespace, slash-separated.
//
// Directories whose bare name falls outside the path grammar are pruned:
// the subtree is skipped with a warning and the walk continues. The start
// directory itself is subject to the same check. Files with invalid names
// are skipped with a warning. If visit returns false the walk stops early.
//
// A start directory that does not exist (or is not a directory) yields no
// visits and a nil error. Any other I/O failure aborts the walk.
func Walk(typeRoot, namespace, start string, logger *slog.Logger, visit func(ident.Identifier) bool) error {
	nsRoot := filepath.Join(typeRoot, namespace)
	startDir := filepath.Join(nsRoot, filepath.FromSlash(start))
	info, err := os.Stat(startDir)
	if err != nil || !info.IsDir() {
		return nil
	}
	return filepath.WalkDir(startDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if ident.ValidPath(name) {
				return nil
			}
			logger.Warn("skipping directory: name is not a valid identifier path",
				slog.String("directory", relativeTo(typeRoot, path)))
			return fs.SkipDir
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !ident.ValidPath(name) {
			logger.Warn("skipping file: name is not a valid identifier path",
				slog.String("file", relativeTo(typeRoot, path)))
			return nil
		}
		rel, err := filepath.Rel(nsRoot, path)
		if err != nil {
			return err
		}
		if !visit(ident.Identifier{Namespace: namespace, Path: filepath.ToSlash(rel)}) {
			return fs.SkipAll
		}
		return nil
	})
}

// relativeTo renders path relative to root for diagnostics, falling back
// to the absolute form when no relative form exists.
func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
