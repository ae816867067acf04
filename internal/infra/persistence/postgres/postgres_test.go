package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolSampler_LogsOnlyNewWaits(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	current := sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond}
	sampler := &poolSampler{
		stats:  func() sql.DBStats { return current },
		logger: logger,
		prev:   current,
	}

	sampler.sample(context.Background())
	assert.Empty(t, buf.String())

	current = sql.DBStats{WaitCount: 5, WaitDuration: 110 * time.Millisecond, InUse: 20, MaxOpenConnections: 20}
	sampler.sample(context.Background())

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "waits=2")
	assert.Contains(t, out, "avgWait=50ms")

	buf.Reset()
	current.WaitCount++
	current.WaitDuration += time.Millisecond
	sampler.sample(context.Background())
	assert.Contains(t, buf.String(), "level=DEBUG")
}
