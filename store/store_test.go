package store

import (
	"context"
	"testing"
	"time"
)

// ══════════════════════════════════════════════
// InMemoryDecisionLog tests
// ══════════════════════════════════════════════

func rec(typ string) Record {
	return Record{Type: typ, CreatedAt: time.Now().UTC()}
}

func TestInMemory_AppendAndRecent(t *testing.T) {
	l := NewInMemoryDecisionLog(0)
	ctx := context.Background()

	for _, typ := range []string{"chat", "image", "video"} {
		if err := l.Append(ctx, "s1", rec(typ)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recs, err := l.Recent(ctx, "s1", 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if recs[0].Type != "chat" || recs[2].Type != "video" {
		t.Fatalf("expected chronological order, got %+v", recs)
	}
}

func TestInMemory_RecentLimit(t *testing.T) {
	l := NewInMemoryDecisionLog(0)
	ctx := context.Background()

	for _, typ := range []string{"chat", "image", "video"} {
		if err := l.Append(ctx, "s1", rec(typ)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recs, err := l.Recent(ctx, "s1", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 2 || recs[0].Type != "image" {
		t.Fatalf("expected the last 2 records, got %+v", recs)
	}
}

func TestInMemory_MaxLenTrims(t *testing.T) {
	l := NewInMemoryDecisionLog(2)
	ctx := context.Background()

	for _, typ := range []string{"chat", "image", "video"} {
		if err := l.Append(ctx, "s1", rec(typ)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recs, err := l.Recent(ctx, "s1", 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 2 || recs[0].Type != "image" {
		t.Fatalf("expected oldest record trimmed, got %+v", recs)
	}
}

func TestInMemory_SessionsAreIsolated(t *testing.T) {
	l := NewInMemoryDecisionLog(0)
	ctx := context.Background()

	if err := l.Append(ctx, "s1", rec("chat")); err != nil {
		t.Fatalf("append: %v", err)
	}
	recs, err := l.Recent(ctx, "s2", 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty log for other session, got %+v", recs)
	}
}

func TestInMemory_Clear(t *testing.T) {
	l := NewInMemoryDecisionLog(0)
	ctx := context.Background()

	if err := l.Append(ctx, "s1", rec("chat")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := l.Clear(ctx, "s1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	recs, err := l.Recent(ctx, "s1", 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty log after clear, got %+v", recs)
	}
}
