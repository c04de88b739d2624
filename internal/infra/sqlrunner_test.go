package infra

import (
	"strings"
	"testing"

	"server/internal/sqlinline"
)

func TestExtractMarker(t *testing.T) {
	marker, trimmed, err := extractMarker(sqlinline.QSelectAccountByID)
	if err != nil {
		t.Fatalf("extractMarker() error = %v", err)
	}
	if len(marker) != 36 {
		t.Fatalf("marker = %q, want uuid", marker)
	}
	if strings.Contains(trimmed, "--sql") {
		t.Fatalf("marker line leaked into query: %q", trimmed)
	}
	if !strings.Contains(trimmed, "from accounts") {
		t.Fatalf("query body missing: %q", trimmed)
	}
}

func TestExtractMarkerRejectsUntagged(t *testing.T) {
	if _, _, err := extractMarker("select 1;"); err == nil {
		t.Fatal("expected error for untagged query")
	}
}
