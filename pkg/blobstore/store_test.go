package blobstore_test

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/183amir/bob.db.atnt/pkg/atnt"
	"github.com/183amir/bob.db.atnt/pkg/blobstore"
	"github.com/183amir/bob.db.atnt/pkg/blobstore/codec"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type testMetrics struct {
	mtx                 sync.Mutex
	puts, gets, deletes map[bool]int
}

func newTestMetrics() *testMetrics {
	return &testMetrics{
		puts:    make(map[bool]int),
		gets:    make(map[bool]int),
		deletes: make(map[bool]int),
	}
}

func (m *testMetrics) AddPut(success bool, _ time.Duration) {
	m.mtx.Lock()
	m.puts[success]++
	m.mtx.Unlock()
}

func (m *testMetrics) AddGet(success bool) {
	m.mtx.Lock()
	m.gets[success]++
	m.mtx.Unlock()
}

func (m *testMetrics) AddDelete(success bool) {
	m.mtx.Lock()
	m.deletes[success]++
	m.mtx.Unlock()
}

func newStore(t *testing.T, opts ...blobstore.Option) *blobstore.Store {
	s := blobstore.New(append([]blobstore.Option{
		blobstore.WithPath(filepath.Join(t.TempDir(), "blobs")),
		blobstore.WithNoSync(true),
	}, opts...)...)
	require.NoError(t, s.Init())
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func testFile(t *testing.T, clientID, clientFileID int) atnt.File {
	f, err := atnt.NewFile(clientID, clientFileID)
	require.NoError(t, err)
	return f
}

func TestStore(t *testing.T) {
	m := newTestMetrics()
	core, logs := observer.New(zap.InfoLevel)
	s := newStore(t, blobstore.WithMetrics(m), blobstore.WithLogger(zap.New(core)))

	f := testFile(t, 3, 5)
	require.Equal(t, filepath.Join(s.Root(), "s3", "5.bin"), s.Path(f))

	ok, err := s.Exists(f)
	require.NoError(t, err)
	require.False(t, ok)

	var data []byte
	require.ErrorIs(t, s.Get(f, &data), blobstore.ErrNotFound)

	require.NoError(t, s.Put(f, []byte{1, 2, 3}))

	ok, err = s.Exists(f)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, s.Get(f, &data))
	require.Equal(t, []byte{1, 2, 3}, data)

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, s.Put(f, []byte{4}))
		require.NoError(t, s.Get(f, &data))
		require.Equal(t, []byte{4}, data)
	})

	t.Run("unsupported value", func(t *testing.T) {
		err := s.Put(testFile(t, 1, 1), 42)
		require.ErrorIs(t, err, codec.ErrUnsupportedType)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Delete(f))

		ok, err := s.Exists(f)
		require.NoError(t, err)
		require.False(t, ok)

		require.ErrorIs(t, s.Delete(f), blobstore.ErrNotFound)
	})

	require.Equal(t, map[bool]int{true: 2, false: 1}, m.puts)
	require.Equal(t, map[bool]int{true: 2, false: 1}, m.gets)
	require.Equal(t, map[bool]int{true: 1, false: 1}, m.deletes)

	entries := logs.FilterMessage("blob storage operation").All()
	require.Len(t, entries, 3)
	require.Equal(t, "PUT", entries[0].ContextMap()["op"])
	require.Equal(t, "s3/5", entries[0].ContextMap()["file"])
	require.Equal(t, "DELETE", entries[2].ContextMap()["op"])
}

func TestStore_Extensions(t *testing.T) {
	t.Run("zstd", func(t *testing.T) {
		s := newStore(t, blobstore.WithExtension(".zst"))
		f := testFile(t, 40, 10)

		require.NoError(t, s.Put(f, "compressed payload"))

		raw, err := os.ReadFile(s.Path(f))
		require.NoError(t, err)
		require.True(t, codec.IsCompressed(raw))

		var res string
		require.NoError(t, s.Get(f, &res))
		require.Equal(t, "compressed payload", res)
	})

	t.Run("yaml", func(t *testing.T) {
		type features struct {
			Values []int `yaml:"values"`
		}

		s := newStore(t, blobstore.WithExtension(".yaml"))
		f := testFile(t, 2, 1)

		require.NoError(t, s.Put(f, features{Values: []int{1, 2}}))

		var res features
		require.NoError(t, s.Get(f, &res))
		require.Equal(t, []int{1, 2}, res.Values)
	})

	t.Run("custom codec", func(t *testing.T) {
		r, err := codec.NewRegistry()
		require.NoError(t, err)
		t.Cleanup(func() { require.NoError(t, r.Close()) })
		r.Register(atnt.DefaultExtension, codec.Raw{})

		s := newStore(t, blobstore.WithCodecs(r), blobstore.WithExtension(atnt.DefaultExtension))
		f := testFile(t, 1, 2)

		require.NoError(t, s.Put(f, []byte("hdf5")))
		require.FileExists(t, filepath.Join(s.Root(), "s1", "2.hdf5"))
	})

	t.Run("unsupported", func(t *testing.T) {
		s := blobstore.New(
			blobstore.WithPath(t.TempDir()),
			blobstore.WithExtension(".png"))
		require.ErrorIs(t, s.Init(), codec.ErrUnsupportedExtension)
	})
}

func TestStore_ReadOnly(t *testing.T) {
	dir := t.TempDir()
	f := testFile(t, 4, 4)

	rw := newStore(t, blobstore.WithPath(dir))
	require.NoError(t, rw.Put(f, []byte{7}))

	ro := newStore(t, blobstore.WithPath(dir), blobstore.WithReadOnly(true))
	require.ErrorIs(t, ro.Put(f, []byte{8}), blobstore.ErrReadOnly)
	require.ErrorIs(t, ro.Delete(f), blobstore.ErrReadOnly)

	var data []byte
	require.NoError(t, ro.Get(f, &data))
	require.Equal(t, []byte{7}, data)

	t.Run("as saver", func(t *testing.T) {
		other := testFile(t, 4, 5)

		require.ErrorIs(t, other.Save(ro, []byte{9}, dir, ".bin"), blobstore.ErrReadOnly)
		require.NoFileExists(t, other.MakePath(dir, ".bin"))

		require.ErrorIs(t, f.Save(ro, []byte{9}, dir, ".bin"), blobstore.ErrReadOnly)
		require.NoError(t, ro.Get(f, &data))
		require.Equal(t, []byte{7}, data)
	})
}

func TestStore_NotInitialized(t *testing.T) {
	dir := t.TempDir()
	s := blobstore.New(blobstore.WithPath(dir))
	f := testFile(t, 1, 1)

	var data []byte
	require.ErrorIs(t, s.Save([]byte{1}, filepath.Join(dir, "x.bin")), blobstore.ErrNotInitialized)
	require.ErrorIs(t, s.Load(filepath.Join(dir, "x.bin"), &data), blobstore.ErrNotInitialized)
	require.ErrorIs(t, s.Put(f, []byte{1}), blobstore.ErrNotInitialized)
	require.ErrorIs(t, s.Get(f, &data), blobstore.ErrNotInitialized)
	require.ErrorIs(t, s.Delete(f), blobstore.ErrNotInitialized)

	require.NoError(t, s.Init())
	require.NoError(t, s.Put(f, []byte{1}))
	require.NoError(t, s.Close())

	require.ErrorIs(t, s.Put(f, []byte{2}), blobstore.ErrNotInitialized)
	require.NoError(t, s.Close())
}

func TestStore_InterruptedWrites(t *testing.T) {
	dir := t.TempDir()
	f := testFile(t, 3, 3)
	p := f.MakePath(dir, ".bin")

	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))

	// Leftovers of writers that died before renaming, in the current and
	// the counter-based naming.
	var stale []string
	for i := 0; i < 5; i++ {
		stale = append(stale, p+"#"+strconv.Itoa(i))
	}
	stale = append(stale, p+".123456"+".tmp", filepath.Join(dir, "s1", "1.bin.42.tmp"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "s1"), 0o750))
	for _, sp := range stale {
		require.NoError(t, os.WriteFile(sp, []byte("partial"), 0o640))
	}

	s := newStore(t, blobstore.WithPath(dir))

	require.NoFileExists(t, stale[5])
	require.NoFileExists(t, stale[6])

	require.NoError(t, s.Put(f, []byte{1}))
	require.NoError(t, s.Put(f, []byte{2}))

	var data []byte
	require.NoError(t, s.Get(f, &data))
	require.Equal(t, []byte{2}, data)

	n := 0
	require.NoError(t, s.Iterate(new(blobstore.IteratePrm).WithHandler(func(e blobstore.IterationElement) error {
		require.Equal(t, f, e.File)
		n++
		return nil
	})))
	require.Equal(t, 1, n)

	entries, err := os.ReadDir(filepath.Dir(p))
	require.NoError(t, err)
	for _, e := range entries {
		require.NotContains(t, e.Name(), ".tmp", "temporary files must not outlive writes")
	}

	t.Run("reserved extension", func(t *testing.T) {
		s := blobstore.New(blobstore.WithPath(t.TempDir()), blobstore.WithExtension(".tmp"))
		require.Error(t, s.Init())
	})
}

func TestStore_Perm(t *testing.T) {
	s := newStore(t, blobstore.WithPerm(0o600))
	f := testFile(t, 6, 6)

	require.NoError(t, s.Put(f, []byte{1}))

	fi, err := os.Stat(s.Path(f))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
}

func TestStore_ConcurrentPut(t *testing.T) {
	s := newStore(t)
	f := testFile(t, 5, 5)

	const workers = 4

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.Put(f, []byte{byte(i)})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	var data []byte
	require.NoError(t, s.Get(f, &data))
	require.Len(t, data, 1)
}
