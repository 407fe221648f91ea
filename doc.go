// Package respack provides a read-only, namespaced resource store over
// on-disk directory trees.
//
// A pack maps abstract resource types to concrete filesystem roots and
// addresses every resource with a (type, namespace, path) triple:
//
//	<root of type>/<namespace>/<path>
//
// The set of namespaces under each root is discovered once at construction
// by listing the root's immediate subdirectories; directory and file names
// outside the identifier grammar ([a-z0-9_.-] plus "/" in paths) are
// excluded with a logged warning rather than an error.
//
// # Quick Start
//
// Open a pack rooted at one directory with a type per subdirectory:
//
//	assets := respack.Type{ID: "assets", Dir: "assets"}
//	data := respack.Type{ID: "data", Dir: "data"}
//	p, err := respack.MultiType("./mypack", "mypack", []respack.Type{assets, data})
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	ids, err := p.Find(assets, "base", "textures", func(id respack.Identifier) bool {
//	    return strings.HasSuffix(id.Path, ".png")
//	})
//
// Read one resource:
//
//	rc, err := p.Open(assets, respack.Identifier{Namespace: "base", Path: "textures/stone.png"})
//
// Packs distributed as zip files can be opened with [OpenZip]; closing the
// returned pack releases the extraction.
package respack
