// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdfrip/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.HistoryConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "history")
	store, err := NewStore(types.HistoryConfig{Dir: dir})
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(dir, dbFile))
	assert.NoError(t, err, "database file should exist")
}

func TestStore_RecordAndRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := types.RunRecord{
		InputPath:     "scans/report.pdf",
		OutputPath:    "output/report.md",
		Pages:         42,
		DPI:           300,
		PagesPerChunk: 10,
		Languages:     []string{"eng", "deu"},
		Duration:      1500 * time.Millisecond,
	}
	require.NoError(t, store.Record(ctx, rec))

	records, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.NotZero(t, got.ID)
	assert.Equal(t, rec.InputPath, got.InputPath)
	assert.Equal(t, rec.OutputPath, got.OutputPath)
	assert.Equal(t, rec.Pages, got.Pages)
	assert.Equal(t, rec.DPI, got.DPI)
	assert.Equal(t, rec.PagesPerChunk, got.PagesPerChunk)
	assert.Equal(t, rec.Languages, got.Languages)
	assert.Equal(t, rec.Duration, got.Duration)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set on insert")
}

func TestStore_RecentOrderAndLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		rec := types.RunRecord{
			InputPath:     fmt.Sprintf("doc-%d.pdf", i),
			OutputPath:    fmt.Sprintf("output/doc-%d.md", i),
			Pages:         i,
			DPI:           300,
			PagesPerChunk: 10,
		}
		require.NoError(t, store.Record(ctx, rec))
	}

	records, err := store.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Newest first.
	assert.Equal(t, "doc-5.pdf", records[0].InputPath)
	assert.Equal(t, "doc-4.pdf", records[1].InputPath)
	assert.Equal(t, "doc-3.pdf", records[2].InputPath)

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestStore_EmptyLanguages(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, types.RunRecord{
		InputPath:     "a.pdf",
		OutputPath:    "output/a.md",
		Pages:         1,
		DPI:           150,
		PagesPerChunk: 5,
	}))

	records, err := store.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Languages)
}

func TestStore_ExportYAML(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, types.RunRecord{
		InputPath:     "scan.pdf",
		OutputPath:    "output/scan.md",
		Pages:         7,
		DPI:           300,
		PagesPerChunk: 10,
		Languages:     []string{"eng"},
	}))

	var buf bytes.Buffer
	require.NoError(t, store.ExportYAML(ctx, &buf))

	out := buf.String()
	assert.Contains(t, out, "input_path: scan.pdf")
	assert.Contains(t, out, "output_path: output/scan.md")
	assert.Contains(t, out, "pages: 7")
	assert.Contains(t, out, "- eng")
}

func TestStore_Reopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(types.HistoryConfig{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, store.Record(ctx, types.RunRecord{
		InputPath:     "persist.pdf",
		OutputPath:    "output/persist.md",
		Pages:         2,
		DPI:           300,
		PagesPerChunk: 10,
	}))
	require.NoError(t, store.Close())

	reopened, err := NewStore(types.HistoryConfig{Dir: dir})
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
