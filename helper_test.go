package budget

import (
	"testing"
	"time"
)

// mustTime parses an RFC3339 instant or fails the test.
func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	instant, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("invalid time %q: %v", s, err)
	}
	return instant
}
