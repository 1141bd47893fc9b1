package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{in: "", want: zerolog.InfoLevel},
		{in: "trace", want: zerolog.TraceLevel},
		{in: " DEBUG ", want: zerolog.DebugLevel},
		{in: "warning", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))
	ctx = WithComponent(ctx, "pip")
	ctx = WithURL(ctx, "https://www.twitch.tv/")

	FromContext(ctx).Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"pip"`)
	assert.Contains(t, out, `"url":"https://www.twitch.tv/"`)
	assert.Contains(t, out, `"message":"hello"`)
}

func TestFromContext_DisabledWhenMissing(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf).Level(zerolog.InfoLevel))

	FromContext(ctx).Debug().Msg("hidden")
	ctx = SetLevel(ctx, zerolog.DebugLevel)
	FromContext(ctx).Debug().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_WritesRotatedFile(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Format = FormatJSON
	cfg.FileDir = dir

	logger, closer, err := New(cfg)
	require.NoError(t, err)
	logger.Info().Str("k", "v").Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestLogRotator_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, 1, 1, 0, false)
	require.NoError(t, err)
	defer r.Close()

	line := []byte(strings.Repeat("x", 600*1024) + "\n")
	for i := 0; i < 3; i++ {
		_, err := r.Write(line)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), logFileName+".") {
			backups++
		}
	}
	// at most maxBackups survive pruning
	assert.LessOrEqual(t, backups, 1)
	assert.FileExists(t, filepath.Join(dir, logFileName))
}

func TestTruncateURL(t *testing.T) {
	assert.Equal(t, "https://a.tv/", TruncateURL("https://a.tv/", 20))
	assert.Equal(t, "https://a...", TruncateURL("https://a.tv/channel", 12))
	assert.Equal(t, "https://a.tv/channel", TruncateURL("https://a.tv/channel", 0))

	// never split a multi-byte rune
	got := TruncateURL("https://a.tv/é/streamer", 17)
	assert.Equal(t, "https://a.tv/...", got)
	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), 17)
	assert.Equal(t, "https://a.tv/é...", TruncateURL("https://a.tv/é/streamer", 18))
}

func TestLogRotator_BackupsInSameSecondDoNotCollide(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, 1, 0, 0, false)
	require.NoError(t, err)
	defer r.Close()

	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	first := r.backupName(now)
	require.NoError(t, os.WriteFile(first, []byte("a"), 0o600))
	second := r.backupName(now)
	require.NoError(t, os.WriteFile(second+".gz", []byte("b"), 0o600))
	third := r.backupName(now)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, second, third)
	assert.Equal(t, filepath.Join(dir, logFileName+".2026-10-17-12-00-00.000"), first)
	assert.Equal(t, first+"-1", second)
	assert.Equal(t, first+"-2", third)

	line := []byte(strings.Repeat("x", 600*1024) + "\n")
	for i := 0; i < 3; i++ {
		_, err := r.Write(line)
		require.NoError(t, err)
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), logFileName+".") {
			backups++
		}
	}
	// two seeded files plus one per rotation
	assert.Equal(t, 4, backups)
}
