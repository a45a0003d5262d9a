package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/viewmock/internal/model"
)

const validScenario = `name: forgotten notification
fields:
  Name: One
  Count: 1
observe: [Name]
steps:
  - set: {Name: Two}
  - set_silently: {Name: X}
  - notify: ""
  - expect: {field: Name, displayed: X}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLocalScenarioStore_Find(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.viewmock.yaml"), validScenario)
	writeFile(t, filepath.Join(root, "b.viewmock.yml"), validScenario)
	writeFile(t, filepath.Join(root, "notes.yaml"), "x: 1\n")
	writeFile(t, filepath.Join(root, "sub", "c.viewmock.yaml"), validScenario)
	writeFile(t, filepath.Join(root, "vendor", "d.viewmock.yaml"), validScenario)

	store := NewLocalScenarioStore()

	t.Run("directory is not scanned recursively", func(t *testing.T) {
		found, err := store.Find([]m.Path{m.Path(root)})
		require.NoError(t, err)
		assert.Equal(t, []m.Path{
			m.Path(filepath.Join(root, "a.viewmock.yaml")),
			m.Path(filepath.Join(root, "b.viewmock.yml")),
		}, found)
	})

	t.Run("recursive pattern descends into sub directories", func(t *testing.T) {
		found, err := store.Find([]m.Path{m.Path(root + "/...")})
		require.NoError(t, err)
		assert.Contains(t, found, m.Path(filepath.Join(root, "sub", "c.viewmock.yaml")))
		assert.NotContains(t, found, m.Path(filepath.Join(root, "vendor", "d.viewmock.yaml")))
		assert.Len(t, found, 3)
	})

	t.Run("explicit file and duplicates", func(t *testing.T) {
		file := m.Path(filepath.Join(root, "notes.yaml"))
		found, err := store.Find([]m.Path{file, file})
		require.NoError(t, err)
		assert.Equal(t, []m.Path{file}, found)
	})

	t.Run("exclude patterns", func(t *testing.T) {
		found, err := store.Find([]m.Path{m.Path(root + "/...")}, `sub/`, `b\.viewmock`)
		require.NoError(t, err)
		assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "a.viewmock.yaml"))}, found)
	})

	t.Run("invalid exclude pattern", func(t *testing.T) {
		_, err := store.Find([]m.Path{m.Path(root)}, "(")
		require.Error(t, err)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := store.Find([]m.Path{m.Path(filepath.Join(root, "nope"))})
		require.Error(t, err)
	})
}

func TestLocalScenarioStore_Load(t *testing.T) {
	root := t.TempDir()
	store := NewLocalScenarioStore()

	t.Run("valid scenario", func(t *testing.T) {
		path := filepath.Join(root, "valid.viewmock.yaml")
		writeFile(t, path, validScenario)

		scenario, err := store.Load(m.Path(path))
		require.NoError(t, err)

		assert.Equal(t, "forgotten notification", scenario.Name)
		assert.Equal(t, m.Path(path), scenario.Source)
		assert.Equal(t, map[string]any{"Name": "One", "Count": 1}, scenario.Fields)
		assert.Equal(t, []string{"Name"}, scenario.Observe)
		require.Len(t, scenario.Steps, 4)
		require.NotNil(t, scenario.Steps[2].Notify)
		assert.Equal(t, "", *scenario.Steps[2].Notify)
		assert.Equal(t, "X", scenario.Steps[3].Expect.Displayed)
	})

	t.Run("name defaults to file name", func(t *testing.T) {
		path := filepath.Join(root, "unnamed.viewmock.yaml")
		writeFile(t, path, "fields: {A: 1}\n")

		scenario, err := store.Load(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, "unnamed", scenario.Name)
		assert.Nil(t, scenario.Observe)
	})

	t.Run("invalid step", func(t *testing.T) {
		path := filepath.Join(root, "invalid.viewmock.yaml")
		writeFile(t, path, "steps:\n  - set: {A: 1}\n    notify: A\n")

		_, err := store.Load(m.Path(path))
		require.ErrorIs(t, err, m.ErrInvalidStep)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(root, "broken.viewmock.yaml")
		writeFile(t, path, "steps: [\n")

		_, err := store.Load(m.Path(path))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := store.Load(m.Path(filepath.Join(root, "absent.viewmock.yaml")))
		require.Error(t, err)
	})
}

func TestLocalScenarioStore_Testdata(t *testing.T) {
	store := NewLocalScenarioStore()

	found, err := store.Find([]m.Path{"testdata/..."})
	require.NoError(t, err)
	require.Equal(t, []m.Path{
		"testdata/forgotten_notification.viewmock.yaml",
		"testdata/refresh_all.viewmock.yaml",
	}, found)

	for _, path := range found {
		scenario, err := store.Load(path)
		require.NoError(t, err, path)
		assert.NotEmpty(t, scenario.Steps, path)
	}
}
