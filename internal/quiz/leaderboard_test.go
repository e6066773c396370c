package quiz

import (
	"sync"
	"testing"
)

func TestLeaderboard_RecordMaxSemantics(t *testing.T) {
	lb := NewLeaderboard()

	if !lb.Record("ada", 30) {
		t.Error("first record should report an update")
	}
	if lb.Record("ada", 20) {
		t.Error("lower score should not update")
	}
	if lb.Record("ada", 30) {
		t.Error("equal score should not update")
	}
	if !lb.Record("ada", 40) {
		t.Error("higher score should update")
	}

	if best, ok := lb.Best("ada"); !ok || best != 40 {
		t.Errorf("Best(ada) = %d, %v; want 40, true", best, ok)
	}
	if _, ok := lb.Best("unknown"); ok {
		t.Error("unknown user should not have an entry")
	}
}

func TestLeaderboard_TopOrdering(t *testing.T) {
	lb := NewLeaderboard()
	lb.Record("carol", 60)
	lb.Record("ada", 100)
	lb.Record("bob", 60)
	lb.Record("dan", 10)

	top := lb.Top(3)
	want := []Entry{
		{Username: "ada", Score: 100},
		{Username: "bob", Score: 60},
		{Username: "carol", Score: 60},
	}
	if len(top) != len(want) {
		t.Fatalf("Top(3) returned %d entries", len(top))
	}
	for i := range want {
		if top[i] != want[i] {
			t.Errorf("Top[%d] = %+v, want %+v", i, top[i], want[i])
		}
	}

	if got := len(lb.Top(0)); got != 4 {
		t.Errorf("Top(0) returned %d entries, want all 4", got)
	}
}

func TestLeaderboard_ConcurrentRecords(t *testing.T) {
	lb := NewLeaderboard()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			lb.Record("ada", score)
		}(i * 10)
	}
	wg.Wait()

	if best, _ := lb.Best("ada"); best != 500 {
		t.Errorf("best = %d, want 500", best)
	}
}
