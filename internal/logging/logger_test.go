package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/lni/dragonboat/v4/logger"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logger.LogLevel
	}{
		{"debug", logger.DEBUG},
		{"INFO", logger.INFO},
		{"warn", logger.WARNING},
		{"warning", logger.WARNING},
		{" error ", logger.ERROR},
		{"critical", logger.CRITICAL},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	require.ErrorContains(t, err, "invalid log level")
}

func TestLoggerFormatAndLevels(t *testing.T) {
	var out bytes.Buffer
	SetOutput(&out)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		_ = SetLevel("warn")
	})

	l := GetLogger("logging-test")
	require.Same(t, l, GetLogger("logging-test"))

	l.Infof("hidden at default level")
	require.Empty(t, out.String())

	l.Warningf("buffer at %d bytes", 512)
	require.Contains(t, out.String(), "WARN  | logging-test    | buffer at 512 bytes")

	require.NoError(t, SetLevel("debug"))
	out.Reset()
	l.Debugf("resolver %s", "registered")
	require.Contains(t, out.String(), "DEBUG | logging-test    | resolver registered")

	require.Error(t, SetLevel("loud"))
}

func TestNewLoggersInheritLevel(t *testing.T) {
	var out bytes.Buffer
	SetOutput(&out)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		_ = SetLevel("warn")
	})

	require.NoError(t, SetLevel("error"))
	l := GetLogger("inherit-test")
	l.Warningf("dropped")
	require.Empty(t, out.String())

	l.Errorf("kept")
	require.Contains(t, out.String(), "kept")
}

func TestPanicf(t *testing.T) {
	require.PanicsWithValue(t, "fatal 1", func() {
		Discard.Panicf("fatal %d", 1)
	})
}
