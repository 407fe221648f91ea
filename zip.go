package respack

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
)

// OpenZip opens a zip-packaged pack. The archive is extracted into a
// temporary directory and the pack is built over the extraction in
// multi-type mode, so the archive layout must be
// <typeDir>/<namespace>/<path> with root-level files (the descriptor) at
// the top of the archive. Closing the pack removes the extracted tree;
// any closer supplied via [WithCloser] runs first.
func OpenZip(zipPath, name string, types []Type, opts ...Option) (*Pack, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("open pack archive %s: %w", zipPath, err)
	}
	defer r.Close()

	dir, err := os.MkdirTemp("", "respack-*")
	if err != nil {
		return nil, fmt.Errorf("create extraction dir: %w", err)
	}
	if err := extract(&r.Reader, dir); err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("extract pack archive %s: %w", zipPath, err)
	}

	p, err := MultiType(dir, name, types, opts...)
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}
	inner := p.closer
	p.closer = func() error {
		var errs []error
		if inner != nil {
			errs = append(errs, inner())
		}
		errs = append(errs, os.RemoveAll(dir))
		return errors.Join(errs...)
	}
	return p, nil
}

// extract writes every archive entry below dest, rejecting entry names
// that would escape it.
func extract(r *zip.Reader, dest string) error {
	for _, f := range r.File {
		name := path.Clean(strings.TrimSuffix(f.Name, "/"))
		if name == "." {
			continue
		}
		if !fs.ValidPath(name) {
			return fmt.Errorf("archive entry escapes root: %s", f.Name)
		}
		target := filepath.Join(dest, filepath.FromSlash(name))
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := extractFile(f, target); err != nil {
			return fmt.Errorf("extract %s: %w", f.Name, err)
		}
	}
	return nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	in, err := f.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
