package stash

import "testing"

// TestCursorIteration tests walking a pool's dense layers with Next
func TestCursorIteration(t *testing.T) {
	pool := FactoryNewPool[int]()
	for i := range 5 {
		pool.AddComponent(Entity(i), i*10)
	}

	cursor := FactoryNewCursor(pool)
	seen := make(map[Entity]int)
	for cursor.Next() {
		seen[cursor.Entity()] = *cursor.Component()
	}

	if len(seen) != 5 {
		t.Fatalf("cursor visited %d entries, want 5", len(seen))
	}
	for i := range 5 {
		if seen[Entity(i)] != i*10 {
			t.Errorf("cursor value for handle %d = %d, want %d", i, seen[Entity(i)], i*10)
		}
	}
}

// TestCursorEmptyPool tests that Next reports exhaustion immediately
func TestCursorEmptyPool(t *testing.T) {
	pool := FactoryNewPool[int]()
	cursor := FactoryNewCursor(pool)

	if cursor.Next() {
		t.Error("Next() = true on an empty pool")
	}
}

// TestCursorRestart tests that an exhausted cursor is reusable
func TestCursorRestart(t *testing.T) {
	pool := FactoryNewPool[int]()
	pool.AddComponent(0, 1)
	pool.AddComponent(1, 2)

	cursor := FactoryNewCursor(pool)
	first := 0
	for cursor.Next() {
		first++
	}
	second := 0
	for cursor.Next() {
		second++
	}

	if first != 2 || second != 2 {
		t.Errorf("passes visited %d then %d entries, want 2 and 2", first, second)
	}
}

// TestCursorRemainingCount tests the remaining-entry report
func TestCursorRemainingCount(t *testing.T) {
	pool := FactoryNewPool[int]()
	for i := range 3 {
		pool.AddComponent(Entity(i), i)
	}

	cursor := FactoryNewCursor(pool)
	want := 3
	for cursor.Next() {
		if cursor.RemainingCount() != want {
			t.Errorf("RemainingCount() = %d, want %d", cursor.RemainingCount(), want)
		}
		want--
	}
}

// TestCursorPairs tests the iterator-function variant
func TestCursorPairs(t *testing.T) {
	pool := FactoryNewPool[Position]()
	pool.AddComponent(2, Position{X: 1})
	pool.AddComponent(4, Position{X: 2})

	cursor := FactoryNewCursor(pool)
	total := 0.0
	count := 0
	for _, pos := range cursor.Pairs() {
		total += pos.X
		count++
	}

	if count != 2 {
		t.Fatalf("Pairs yielded %d entries, want 2", count)
	}
	if total != 3 {
		t.Errorf("summed X = %v, want 3", total)
	}
}
