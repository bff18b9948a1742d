package dbprep

import (
	"testing"
)

// These tests need a reachable postgres and redis, the same way the
// storage tests do.

func TestSchemaCycle(t *testing.T) {
	if err := RemoveData(); err != nil {
		t.Fatalf("TestSchemaCycle: couldn't tear down schema: %v", err)
	}
	if v, err := SchemaVersion(); err != nil || v != 0 {
		t.Fatalf("TestSchemaCycle: version after teardown is %d (%v)", v, err)
	}
	if err := EnsureData(); err != nil {
		t.Fatalf("TestSchemaCycle: couldn't bring schema up: %v", err)
	}
	if v, err := SchemaVersion(); err != nil || v == 0 {
		t.Errorf("TestSchemaCycle: version after EnsureData is %d (%v)", v, err)
	}
	// a second EnsureData must be a no-op
	if err := EnsureData(); err != nil {
		t.Errorf("TestSchemaCycle: repeated EnsureData failed: %v", err)
	}
}

func TestReinitializeAll(t *testing.T) {
	if err := ReinitializeAll(); err != nil {
		t.Fatalf("TestReinitializeAll: %v", err)
	}
	if v, err := SchemaVersion(); err != nil || v == 0 {
		t.Errorf("TestReinitializeAll: version is %d (%v)", v, err)
	}
}
