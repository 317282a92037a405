package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernandozarate/portfolio/internal/metrics"
	"github.com/fernandozarate/portfolio/internal/store"
)

func TestExportStats(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.DBPath = filepath.Join(t.TempDir(), "portfolio.db")

	st, err := store.Open(ctx, cfg.DBPath)
	require.NoError(t, err)
	require.NoError(t, st.RecordVisit(ctx, "1.2.3.4", "ua", "/"))
	require.NoError(t, st.RecordDownload(ctx, "1.2.3.4"))
	require.NoError(t, st.Close())

	var buf bytes.Buffer
	require.NoError(t, exportStats(ctx, cfg, &buf))

	var stats store.Stats
	require.NoError(t, json.Unmarshal(buf.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalVisitors)
	assert.Equal(t, int64(1), stats.CVDownloads)
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()
	cmd, _, err := root.Find([]string{"export-stats"})
	require.NoError(t, err)
	assert.Equal(t, "export-stats", cmd.Name())
	assert.NotNil(t, root.PersistentFlags().Lookup("db"))
	assert.NotNil(t, root.Flags().Lookup("addr"))
}

func TestNewCVLoaderEmbedded(t *testing.T) {
	cfg := testConfig()
	cfg.CVSource = "embedded"
	loader := newCVLoader(cfg, zerolog.Nop(), metrics.New())
	loader.Start(context.Background())
	<-loader.Done()

	a, ok := loader.Asset()
	require.True(t, ok)
	assert.True(t, bytes.HasPrefix(a.Data, []byte("%PDF")))
}
