package services

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/janolinej/internal/logging"
	"github.com/dmitrijs2005/janolinej/internal/store"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestLogger(t *testing.T) (logging.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return logging.NewSlogLogger(slog.New(h)), &buf
}
