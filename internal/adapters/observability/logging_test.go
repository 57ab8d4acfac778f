package observability

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewLoggerJSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "prod")
	logger.Info().Msg("up")
	if !json.Valid(buf.Bytes()) {
		t.Fatalf("expected a JSON log line, got %q", buf.String())
	}
}

func TestNewLoggerConsoleInDev(t *testing.T) {
	for _, env := range []string{"dev", "development"} {
		var buf bytes.Buffer
		logger := newLogger(&buf, env)
		logger.Info().Msg("up")
		if json.Valid(buf.Bytes()) {
			t.Fatalf("%s: expected console output, got JSON %q", env, buf.String())
		}
	}
}
