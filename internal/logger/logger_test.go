package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	log := New()
	if log.GetLevel() == zerolog.Disabled {
		t.Error("Expected logger to be enabled")
	}
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Str("stage", "aggregate").Msg("test message")

	out := buf.String()
	if !strings.Contains(out, "test message") {
		t.Errorf("Expected output to contain message, got: %s", out)
	}
	if !strings.Contains(out, `"stage":"aggregate"`) {
		t.Errorf("Expected structured field in output, got: %s", out)
	}
}

func TestContextRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	ctx := WithContext(context.Background(), log)
	ctxLog := FromContext(ctx)
	ctxLog.Info().Msg("from context")

	if !strings.Contains(buf.String(), "from context") {
		t.Error("Expected log output from context logger")
	}
}

func TestFromContextDefault(t *testing.T) {
	// No logger attached: fall back to an enabled default
	log := FromContext(context.Background())
	if log.GetLevel() == zerolog.Disabled {
		t.Error("Expected default logger to be enabled")
	}
}
