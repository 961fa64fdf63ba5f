package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)
}

func TestLevelForVerbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLevel, LevelForVerbosity(tt.verbosity))
		})
	}
}

func TestSetupLogger_ConsoleOnly(t *testing.T) {
	var console bytes.Buffer
	setup := SetupLogger(Options{Verbosity: 0, Console: &console, NoColor: true})
	defer setup.Close()

	assert.Empty(t, setup.LogFile)

	setup.Logger.Info().Msg("quiet info")
	setup.Logger.Warn().Msg("loud warning")

	out := console.String()
	assert.NotContains(t, out, "quiet info", "info is below the default console level")
	assert.Contains(t, out, "loud warning")
}

func TestSetupLogger_FileReceivesInfo(t *testing.T) {
	var console bytes.Buffer
	dir := filepath.Join(t.TempDir(), "logs")

	setup := SetupLogger(Options{Console: &console, NoColor: true, LogDir: dir, Now: fixedNow})

	wantPath := filepath.Join(dir, "dirsort_20240309_140506.log")
	assert.Equal(t, wantPath, setup.LogFile)

	setup.Logger.Info().Str("file", "photo.jpg").Msg("Planned move")
	setup.Logger.Debug().Msg("hidden debug")
	require.NoError(t, setup.Close())

	data, err := os.ReadFile(wantPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Planned move")
	assert.Contains(t, string(data), "photo.jpg")
	assert.NotContains(t, string(data), "hidden debug")
	assert.NotContains(t, console.String(), "Planned move")
}

func TestSetupLogger_UnwritableLogDirFallsBack(t *testing.T) {
	var console bytes.Buffer
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	setup := SetupLogger(Options{Console: &console, NoColor: true, LogDir: filepath.Join(blocker, "logs")})
	defer setup.Close()

	assert.Empty(t, setup.LogFile)
	assert.Contains(t, console.String(), "Failed to create log file")
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	logger := GetLogger(base, "planner")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"planner"`)
}

func TestOrNop(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)

	got := OrNop(&l)
	got.Info().Msg("kept")
	assert.Contains(t, buf.String(), "kept")

	nop := OrNop(nil)
	assert.Equal(t, zerolog.Disabled, nop.GetLevel())
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "plan")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "duration")
}
