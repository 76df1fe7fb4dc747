package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var captured string
	SetLogger(func(format string, v ...interface{}) {
		captured = fmt.Sprintf(format, v...)
	})
	Logf("scored %.1f%%", 42.5)
	if captured != "scored 42.5%" {
		t.Errorf("expected captured message, got %q", captured)
	}

	// nil installs a no-op logger, not a nil function
	SetLogger(nil)
	if Logf == nil {
		t.Fatal("Logf should never be nil")
	}
	captured = ""
	Logf("dropped")
	if captured != "" {
		t.Errorf("no-op logger should not forward, got %q", captured)
	}
}

func TestLogfDefault(t *testing.T) {
	if Logf == nil {
		t.Fatal("Logf should not be nil by default")
	}
}
