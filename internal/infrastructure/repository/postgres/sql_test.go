package postgres

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get fixture: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(fmt.Errorf("pq: relation fixtures does not exist")) {
		t.Fatalf("expected unrelated error to be reported")
	}
}

func TestNullConversions(t *testing.T) {
	if got := nullInt64ToInt64(sql.NullInt64{}); got != 0 {
		t.Fatalf("expected 0 for null, got %d", got)
	}
	if got := nullInt64ToIntPtr(sql.NullInt64{Int64: 3, Valid: true}); got == nil || *got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	if got := nullInt64ToIntPtr(sql.NullInt64{}); got != nil {
		t.Fatalf("expected nil score, got %v", *got)
	}
	if got := nullBoolToPtr(sql.NullBool{Bool: false, Valid: true}); got == nil || *got {
		t.Fatalf("expected explicit false, got %v", got)
	}
}
