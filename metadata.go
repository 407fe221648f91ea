package respack

import "io"

// MetadataName is the conventional name of the pack descriptor file,
// located directly under the pack's true root.
const MetadataName = "pack.mcmeta"

// MetaReader decodes one metadata value from a pack descriptor stream.
// The mcmeta subpackage provides a descriptor decoder; hosts may supply
// their own.
type MetaReader[T any] func(io.Reader) (T, error)

// ParseMetadata opens the pack descriptor under the pack's true root and
// applies read to its contents. The stream is closed whether or not read
// succeeds; read's own error is propagated unchanged, and a descriptor
// that cannot be opened surfaces the filesystem error.
func ParseMetadata[T any](p *Pack, read MetaReader[T]) (T, error) {
	f, err := p.OpenRoot(MetadataName)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()
	return read(f)
}
