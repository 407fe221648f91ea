package respack

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/respack/mcmeta"
)

// writeZip builds a zip file at path from a map of entry name to content.
func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	for name, content := range entries {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
}

func TestOpenZip(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "pack.zip")
	writeZip(t, zipPath, map[string]string{
		"pack.mcmeta":                    `{"pack":{"description":"zipped","pack_format":9}}`,
		"assets/base/textures/stone.png": "png bytes",
		"data/base/recipes/stone.json":   "{}",
	})

	p, err := OpenZip(zipPath, "zipped-pack", []Type{typeAssets, typeData})
	require.NoError(t, err)

	assert.Equal(t, "zipped-pack", p.Name())
	assert.Equal(t, []string{"base"}, p.Namespaces(typeAssets))

	id := Identifier{Namespace: "base", Path: "textures/stone.png"}
	require.True(t, p.Contains(typeAssets, id))
	rc, err := p.Open(typeAssets, id)
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "png bytes", string(content))

	meta, err := ParseMetadata(p, mcmeta.Decode)
	require.NoError(t, err)
	assert.Equal(t, "zipped", meta.Pack.Description)

	// Close removes the extraction.
	extracted := p.trueRoot
	require.NoError(t, p.Close())
	_, err = os.Stat(extracted)
	assert.True(t, os.IsNotExist(err))
}

func TestOpenZipChainsCloser(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "pack.zip")
	writeZip(t, zipPath, map[string]string{
		"assets/base/a.txt": "a",
	})

	calls := 0
	p, err := OpenZip(zipPath, "zipped-pack", []Type{typeAssets},
		WithCloser(func() error {
			calls++
			return nil
		}))
	require.NoError(t, err)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.Equal(t, 1, calls)
}

func TestOpenZipRejectsEscapingEntries(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "evil.zip")
	writeZip(t, zipPath, map[string]string{
		"../evil.txt": "escape",
	})

	_, err := OpenZip(zipPath, "evil-pack", []Type{typeAssets})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes root")
}

func TestOpenZipMissingArchive(t *testing.T) {
	_, err := OpenZip(filepath.Join(t.TempDir(), "absent.zip"), "nope", []Type{typeAssets})
	require.Error(t, err)
}
