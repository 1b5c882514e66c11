package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gtp/internal/config"
	"gtp/internal/report"
)

func newTestStore(t *testing.T) *ReportStore {
	t.Helper()
	cfg := config.New()
	cfg.OutputDir = t.TempDir()
	return NewReportStore(cfg)
}

func TestReportStore_PathAndRemove(t *testing.T) {
	store := newTestStore(t)

	path := store.Path("TypeParamTest/Foo")
	require.Equal(t, filepath.Join(store.Dir(), "result_.54ype.50aram.54est.2F.46oo.json"), path)

	t.Run("removing a missing report is not an error", func(t *testing.T) {
		require.NoError(t, store.Remove("TypeParamTest/Foo"))
	})

	t.Run("removes a stale report", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
		require.NoError(t, store.Remove("TypeParamTest/Foo"))
		_, err := os.Stat(path)
		require.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestReportStore_Load(t *testing.T) {
	store := newTestStore(t)

	t.Run("missing file", func(t *testing.T) {
		_, err := store.Load(store.Path("Basic"))
		require.ErrorIs(t, err, ErrReportNotFound)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := store.Path("Broken")
		require.NoError(t, os.WriteFile(path, []byte(`{"failures":1}`), 0644))

		_, err := store.Load(path)
		var parseErr *report.ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("valid file", func(t *testing.T) {
		path := store.Path("Basic")
		data := `{"failures":1,"testsuites":[{"testsuite":[{"classname":"Basic","name":"T1","failures":"1"}]}]}`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		r, err := store.Load(path)
		require.NoError(t, err)
		require.Equal(t, 1, r.TotalFailures)
	})
}

func TestReportStore_LoadAll(t *testing.T) {
	store := newTestStore(t)
	store.cfg.ReportDir = "reports"
	require.NoError(t, store.EnsureDir())

	valid := `{"failures":0,"testsuites":[{"testsuite":[{"classname":"S","name":"t"}]}]}`
	require.NoError(t, os.WriteFile(store.Path("Zeta/1"), []byte(valid), 0644))
	require.NoError(t, os.WriteFile(store.Path("Alpha"), []byte(valid), 0644))
	require.NoError(t, os.WriteFile(store.Path("Broken"), []byte("not json"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "unrelated.json"), []byte(valid), 0644))

	reports, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, reports, 3)

	require.Equal(t, "Alpha", string(reports[0].Suite))
	require.Equal(t, "Broken", string(reports[1].Suite))
	require.Error(t, reports[1].Err)
	require.Equal(t, "Zeta/1", string(reports[2].Suite))
	require.NotNil(t, reports[2].Report)
}
