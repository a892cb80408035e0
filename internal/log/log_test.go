package log

import (
	"bytes"
	"strings"
	"testing"
)

// The global logger configures exactly once per process, so a single test
// exercises configuration, the idempotence guarantee and child loggers.
func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Output: &buf, Level: "debug", Service: "test"})

	// A second call must not reconfigure the logger.
	Configure(Config{Service: "other"})

	base := Base()
	base.Info().Msg("hello")
	out := buf.String()
	if !strings.Contains(out, `"service":"test"`) {
		t.Fatalf("missing service field: %s", out)
	}
	if !strings.Contains(out, `"message":"hello"`) {
		t.Fatalf("missing message: %s", out)
	}

	buf.Reset()
	detectLogger := WithComponent("detect")
	detectLogger.Info().Msg("run")
	if !strings.Contains(buf.String(), `"component":"detect"`) {
		t.Fatalf("missing component field: %s", buf.String())
	}

	buf.Reset()
	base.Debug().Msg("verbose")
	if !strings.Contains(buf.String(), `"verbose"`) {
		t.Fatalf("debug level should be enabled: %s", buf.String())
	}
}
