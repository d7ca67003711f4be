package listfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/apiflags/internal/listfile"
	"github.com/agentstation/apiflags/pkg/apilist"
	"github.com/agentstation/apiflags/pkg/errors"
)

func TestReadLines(t *testing.T) {
	t.Run("skips comments and blanks", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "list.txt")
		content := strings.Join([]string{
			"# header comment",
			"La/A;->a()V",
			"",
			"   ",
			"  # indented comment",
			"Lb/B;->b()V",
		}, "\n") + "\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		lines, err := listfile.ReadLines(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"La/A;->a()V", "Lb/B;->b()V"}, lines)
	})

	t.Run("preserves order and duplicates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "list.txt")
		require.NoError(t, os.WriteFile(path, []byte("b\na\nb\n"), 0644))

		lines, err := listfile.ReadLines(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a", "b"}, lines)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := listfile.ReadLines(filepath.Join(t.TempDir(), "absent.txt"))
		require.Error(t, err)

		var ioErr *errors.IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, "open", ioErr.Operation)
	})

	t.Run("no trailing newline", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "list.txt")
		require.NoError(t, os.WriteFile(path, []byte("La/A;->a()V"), 0644))

		lines, err := listfile.ReadLines(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"La/A;->a()V"}, lines)
	})
}

func TestReadEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public.txt")
	require.NoError(t, os.WriteFile(path, []byte("La/A;->a()V\nLb/B;->b()V\n"), 0644))

	entries, err := listfile.ReadEntries(path)
	require.NoError(t, err)
	assert.Equal(t, []apilist.Entry{"La/A;->a()V", "Lb/B;->b()V"}, entries)
}

func TestReadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.csv")
	content := "La/A;->a()V,whitelist\nLb/B;->b()V,greylist,greylist-max-o\nLc/C;->c()V\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rows, err := listfile.ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, apilist.Entry("La/A;->a()V"), rows[0].Entry)
	assert.Equal(t, []apilist.Tag{apilist.TagWhitelist}, rows[0].Tags)
	assert.Equal(t, []apilist.Tag{apilist.TagGreylist, apilist.TagGreylistMaxO}, rows[1].Tags)
	assert.Empty(t, rows[2].Tags)
}

func TestWriteLines(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		lines := []string{"La/A;->a()V,whitelist", "Lb/B;->b()V,blacklist"}

		require.NoError(t, listfile.WriteLines(path, lines))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "La/A;->a()V,whitelist\nLb/B;->b()V,blacklist\n", string(data))

		got, err := listfile.ReadLines(path)
		require.NoError(t, err)
		assert.Equal(t, lines, got)
	})

	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "deeper", "out.csv")
		require.NoError(t, listfile.WriteLines(path, []string{"La/A;->a()V"}))

		_, err := os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("empty lines write empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		require.NoError(t, listfile.WriteLines(path, nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.csv")
		require.NoError(t, listfile.WriteLines(path, []string{"La/A;->a()V"}))

		files, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "out.csv", files[0].Name())
	})
}

func TestGzipRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.csv.gz")
	lines := []string{"La/A;->a()V,whitelist", "Lb/B;->b()V,greylist"}

	require.NoError(t, listfile.WriteLines(path, lines))

	// The file on disk must actually be gzip data, not plain text.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(raw), 2)
	assert.Equal(t, byte(0x1f), raw[0])
	assert.Equal(t, byte(0x8b), raw[1])

	got, err := listfile.ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, lines, got)

	rows, err := listfile.ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, apilist.Entry("La/A;->a()V"), rows[0].Entry)
}
