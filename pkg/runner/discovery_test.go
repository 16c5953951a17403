package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscover_ExtensionsAndHidden(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.md", "# A\n")
	writeFile(t, dir, "b.markdown", "# B\n")
	writeFile(t, dir, "c.txt", "not markdown\n")
	writeFile(t, dir, ".hidden.md", "# hidden\n")
	writeFile(t, dir, ".git/d.md", "# in hidden dir\n")

	files, err := Discover(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "a.md"), files[0])
	assert.Equal(t, filepath.Join(dir, "b.markdown"), files[1])
}

func TestDiscover_SortedAndDeduplicated(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "z.md", "z\n")
	writeFile(t, dir, "a.md", "a\n")

	files, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{".", "a.md"},
	})
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "a.md"), files[0])
	assert.Equal(t, filepath.Join(dir, "z.md"), files[1])
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "keep.md", "keep\n")
	writeFile(t, dir, "vendor/skip.md", "skip\n")
	writeFile(t, dir, "docs/deep/skip.md", "skip\n")

	files, err := Discover(context.Background(), Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**", "docs/**"},
	})
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "keep.md"), files[0])
}

func TestDiscover_ExplicitFileBypassesExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "README.txt", "content\n")

	files, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{"README.txt"},
	})
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestDiscover_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := Discover(context.Background(), Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"no-such-file.md"},
	})
	require.Error(t, err)
}

func TestMatchGlob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"vendor/a.md", "vendor/**", true},
		{"vendor", "vendor/**", true},
		{"other/a.md", "vendor/**", false},
		{"deep/node_modules/x.md", "**/node_modules", true},
		{"docs/guide/a.md", "docs/**/a.md", true},
		{"docs/guide/b.md", "docs/**/a.md", false},
		{"a.md", "*.md", true},
		{"nested/a.md", "*.md", true},
		{"a.txt", "*.md", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.pattern+"/"+tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, matchGlob(tt.path, tt.pattern))
		})
	}
}
