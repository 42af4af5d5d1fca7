package log_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"taskflow/pkg/log"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	for _, cfg := range []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "warn", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "bogus"},
	} {
		l := log.Init(cfg)
		l.Debugf(context.Background(), "level=%s", cfg.Level)
	}
	log.NewNop().Info(context.Background(), "discarded")
}

func TestOutputCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := log.Init(log.ZapConfig{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON, Output: &buf})

	l.Infof(log.WithRequestID(context.Background(), "req-9"), "uc.Add: %s", "ok")
	l.Debug(context.Background(), "below level")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-9"`) || !strings.Contains(out, "uc.Add: ok") {
		t.Errorf("unexpected log output %q", out)
	}
	if strings.Contains(out, "below level") {
		t.Error("debug line should be filtered at info level")
	}
}
