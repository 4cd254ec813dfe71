package main

import (
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/dasher/ecs/component"
	"github.com/milk9111/dasher/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("DASHER_TEST_DIR", "/tmp/art")
	assert.Equal(t, "/tmp/art", getEnv("DASHER_TEST_DIR", "textures"))
	assert.Equal(t, "textures", getEnv("DASHER_TEST_UNSET", "textures"))
}

func TestRecordAndSummary(t *testing.T) {
	run := &component.Run{Outcome: component.Won, Elapsed: 27.5, Distance: 8250, Passed: 15, Obstacles: 15}

	rec := recordFor(run)
	assert.Equal(t, storage.RunRecord{Outcome: "won", Duration: 27.5, Distance: 8250, Passed: 15, Obstacles: 15}, rec)
	assert.Equal(t, "Dapper Dasher: won in 27.5s, 15/15 nebulae passed", summary(run))
}

func TestRenderRuns(t *testing.T) {
	assert.Contains(t, renderRuns(nil, nil, storage.Stats{}), "No runs recorded yet")

	at := time.Date(2026, 3, 4, 5, 6, 0, 0, time.Local)
	runs := []storage.RunRecord{
		{Outcome: "lost", Duration: 3.25, Passed: 0, Obstacles: 15, Distance: 900, CreatedAt: at},
		{Outcome: "won", Duration: 27.5, Passed: 15, Obstacles: 15, Distance: 8250, CreatedAt: at},
	}
	out := renderRuns(runs, &runs[1], storage.Stats{Total: 2, Wins: 1, Losses: 1})
	assert.Contains(t, out, "2026-03-04 05:06")
	assert.Contains(t, out, "lost")
	assert.Contains(t, out, "15/15")
	assert.Contains(t, out, "2 runs, 1 won, 1 lost")
	assert.Contains(t, out, "Best: 27.5s")

	out = renderRuns(runs[:1], nil, storage.Stats{Total: 1, Losses: 1})
	assert.Contains(t, out, "No wins yet.")
}
