package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmuldo/colorlab/colorspace"
	"github.com/mmuldo/colorlab/history"
	"github.com/mmuldo/colorlab/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, e := Open(filepath.Join(t.TempDir(), "data", "test.db"))
	require.NoError(t, e)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestGetPutDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, ok, e := s.Get(ctx, "alice", "k")
	require.NoError(t, e)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, "alice", "k", []byte("v1")))
	require.NoError(t, s.Put(ctx, "alice", "k", []byte("v2")))
	require.NoError(t, s.Put(ctx, "bob", "k", []byte("other")))

	v, ok, e := s.Get(ctx, "alice", "k")
	require.NoError(t, e)
	assert.True(t, ok)
	assert.Equal(t, []byte("v2"), v)

	sessions, e := s.Sessions(ctx)
	require.NoError(t, e)
	assert.Equal(t, []string{"alice", "bob"}, sessions)

	require.NoError(t, s.Delete(ctx, "alice", "k"))
	require.NoError(t, s.Delete(ctx, "alice", "missing"))
	_, ok, e = s.Get(ctx, "alice", "k")
	require.NoError(t, e)
	assert.False(t, ok)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	s, e := Open(path)
	require.NoError(t, e)
	require.NoError(t, s.Put(ctx, "default", "k", []byte("kept")))
	require.NoError(t, s.Close())

	s, e = Open(path)
	require.NoError(t, e)
	defer s.Close()

	v, ok, e := s.Get(ctx, "default", "k")
	require.NoError(t, e)
	assert.True(t, ok)
	assert.Equal(t, "kept", string(v))
}

func TestPaletteRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p, e := s.LoadPalette(ctx, "default")
	require.NoError(t, e)
	assert.Empty(t, p)

	p = palette.Palette{palette.New(colorspace.RGB{R: 200, G: 10, B: 99})}
	require.NoError(t, s.SavePalette(ctx, "default", p))

	got, e := s.LoadPalette(ctx, "default")
	require.NoError(t, e)
	assert.Equal(t, p, got)

	other, e := s.LoadPalette(ctx, "someone-else")
	require.NoError(t, e)
	assert.Empty(t, other)
}

func TestHistoryLoadsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	ref := palette.New(colorspace.RGB{R: 255, G: 255, B: 255})
	sel := palette.New(colorspace.RGB{R: 250, G: 250, B: 250})
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	h := history.History{
		history.New("old", ref, sel, base),
		history.New("new", ref, sel, base.Add(time.Minute)),
	}
	require.NoError(t, s.SaveHistory(ctx, "default", h))

	got, e := s.LoadHistory(ctx, "default")
	require.NoError(t, e)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].Name)
	assert.Equal(t, "old", got[1].Name)
	assert.Equal(t, h[0].DeltaE, got[1].DeltaE)
	assert.Equal(t, h[0].Interpret(), got[1].Interpret())
}

func TestCorruptValueLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Put(ctx, "default", PaletteKey, []byte("{not json")))
	require.NoError(t, s.Put(ctx, "default", HistoryKey, []byte(`[{"deltaE": "x"}]`)))

	p, e := s.LoadPalette(ctx, "default")
	require.NoError(t, e)
	assert.Empty(t, p)

	h, e := s.LoadHistory(ctx, "default")
	require.NoError(t, e)
	assert.Empty(t, h)
}

func TestSaveNilWritesEmptyList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.SavePalette(ctx, "default", nil))
	v, ok, e := s.Get(ctx, "default", PaletteKey)
	require.NoError(t, e)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(v))
}
