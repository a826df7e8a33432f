package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"multilingual-tool-router/internal/model"
)

func TestLogAppendList(t *testing.T) {
	l := New()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := l.Append(ctx, model.RouteDecision{ID: fmt.Sprintf("d%d", i)})
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	n, err := l.Count(ctx)
	if err != nil || n != 5 {
		t.Fatalf("Count = %d, %v; want 5", n, err)
	}

	got, err := l.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != "d3" || got[1].ID != "d4" {
		t.Errorf("List(2) = %v, want last two decisions in order", got)
	}

	all, _ := l.List(ctx, 0)
	if len(all) != 5 {
		t.Errorf("List(0) returned %d decisions, want all 5", len(all))
	}
}

func TestLogConcurrentAppend(t *testing.T) {
	l := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = l.Append(ctx, model.RouteDecision{ID: fmt.Sprintf("d%d", i)})
		}(i)
	}
	wg.Wait()

	n, _ := l.Count(ctx)
	if n != 50 {
		t.Errorf("Count = %d after concurrent appends, want 50", n)
	}
}
