package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// Default verbosity is Warning: Info output stays hidden until the
// caller raises the level.
func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer func() {
		SetSink(os.Stderr)
		SetLevel(Warning)
	}()

	l := New("test")

	l.Info("quiet-by-default")
	if strings.Contains(buf.String(), "quiet-by-default") {
		t.Error("Info must be suppressed at the default level")
	}

	l.Warning("always-visible")
	if !strings.Contains(buf.String(), "always-visible") {
		t.Error("Warning must pass at the default level")
	}

	SetLevel(Info)
	l.Infof("now-%s", "visible")
	if !strings.Contains(buf.String(), "now-visible") {
		t.Error("Info must pass once the level is raised")
	}
}
