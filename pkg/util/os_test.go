package util_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/183amir/bob.db.atnt/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestMkdirAllX(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, util.MkdirAllX(dir, 0o600))

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
	require.NotZero(t, fi.Mode().Perm()&0o100, "user can open the directory")

	require.NoError(t, util.MkdirAllX(dir, 0o600), "existing directory")

	t.Run("concurrent", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "x", "y", "z")

		var wg sync.WaitGroup
		errs := make([]error, 8)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = util.MkdirAllX(dir, 0o700)
			}(i)
		}
		wg.Wait()

		for i := range errs {
			require.NoError(t, errs[i])
		}
	})

	t.Run("file in the way", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(p, nil, 0o600))
		require.Error(t, util.MkdirAllX(p, 0o700))
	})
}
