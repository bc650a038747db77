package kudu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokudu/kudu"
)

func TestFilePath(t *testing.T) {
	t.Parallel()

	t.Run("normalization", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			raw  string
			want string
			desc string
		}{
			{"site/wwwroot/app.txt", "/site/wwwroot/app.txt", "no leading slash"},
			{"/site/wwwroot/app.txt", "/site/wwwroot/app.txt", "already canonical"},
			{"//site/wwwroot/app.txt", "/site/wwwroot/app.txt", "doubled leading slash"},
			{"site/wwwroot/app.txt/", "/site/wwwroot/app.txt", "trailing slash stripped"},
			{"///site/wwwroot/app.txt///", "/site/wwwroot/app.txt", "slash runs at both ends"},
			{"app.txt", "/app.txt", "single segment"},
			{"site//tmp/app.txt", "/site//tmp/app.txt", "embedded doubled slash passes through"},
		}

		for _, tt := range tests {
			t.Run(tt.desc, func(t *testing.T) {
				t.Parallel()
				p, err := kudu.FilePath(tt.raw)

				require.NoError(t, err)
				assert.Equal(t, tt.want, p.String())
				assert.False(t, p.IsFolder())
				assert.False(t, p.IsZero())
			})
		}
	})

	t.Run("empty paths rejected", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "/", "//", "///"} {
			p, err := kudu.FilePath(raw)

			require.Error(t, err, "raw %q must be rejected", raw)
			assert.True(t, p.IsZero())

			pe, ok := kudu.AsInvalidPath(err)
			require.True(t, ok, "error must be an *InvalidPathError")
			assert.Equal(t, raw, pe.Raw)
			assert.Contains(t, err.Error(), "cannot be empty")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		p, err := kudu.FilePath("site/wwwroot/app.txt/")
		require.NoError(t, err)

		again, err := kudu.FilePath(p.String())
		require.NoError(t, err)
		assert.Equal(t, p.String(), again.String())
	})
}

func TestFolderPath(t *testing.T) {
	t.Parallel()

	t.Run("normalization", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			raw  string
			want string
			desc string
		}{
			{"site/wwwroot", "/site/wwwroot/", "trailing slash added"},
			{"site/wwwroot/", "/site/wwwroot/", "trailing slash kept single"},
			{"/site/wwwroot//", "/site/wwwroot/", "doubled trailing slash"},
			{"", "/", "empty is the root"},
			{"/", "/", "root stays root"},
			{"///", "/", "slash run collapses to root"},
			{"LogFiles", "/LogFiles/", "single segment"},
		}

		for _, tt := range tests {
			t.Run(tt.desc, func(t *testing.T) {
				t.Parallel()
				p := kudu.FolderPath(tt.raw)

				assert.Equal(t, tt.want, p.String())
				assert.True(t, p.IsFolder())
			})
		}
	})

	t.Run("root detection", func(t *testing.T) {
		t.Parallel()

		assert.True(t, kudu.FolderPath("").IsRoot())
		assert.True(t, kudu.FolderPath("/").IsRoot())
		assert.False(t, kudu.FolderPath("site").IsRoot())

		file, err := kudu.FilePath("app.txt")
		require.NoError(t, err)
		assert.False(t, file.IsRoot(), "a file is never the root folder")
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		p := kudu.FolderPath("site/wwwroot")
		assert.Equal(t, p.String(), kudu.FolderPath(p.String()).String())
	})
}

func TestPath_Base(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		folder bool
		want   string
		desc   string
	}{
		{"site/wwwroot/app.txt", false, "app.txt", "file base"},
		{"app.txt", false, "app.txt", "single segment file"},
		{"site/wwwroot", true, "wwwroot", "folder base has no slash"},
		{"", true, "/", "root folder"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var p kudu.Path
			if tt.folder {
				p = kudu.FolderPath(tt.raw)
			} else {
				var err error
				p, err = kudu.FilePath(tt.raw)
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, p.Base())
		})
	}

	t.Run("zero value", func(t *testing.T) {
		t.Parallel()

		var p kudu.Path
		assert.True(t, p.IsZero())
		assert.Equal(t, "/", p.Base())
	})
}
