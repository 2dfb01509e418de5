package memory

import (
	"sync"
)

// record is satisfied by pointers to entity structs that carry an int64 id.
type record[T any] interface {
	*T
	GetID() int64
	SetID(id int64)
}

// Table is an in-memory keyed collection for one entity kind. It owns id
// assignment: ids start at 1, grow by one per insert and are never reused,
// even after deletes. Rows are stored by value so callers can never alias
// stored state.
type Table[T any, P record[T]] struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]T
	order  []int64
}

// NewTable creates an empty table.
func NewTable[T any, P record[T]]() *Table[T, P] {
	return &Table[T, P]{
		rows: make(map[int64]T),
	}
}

// Insert assigns the next id to row, stores it and returns the stored copy.
func (t *Table[T, P]) Insert(row T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	P(&row).SetID(t.nextID)
	t.rows[t.nextID] = row
	t.order = append(t.order, t.nextID)
	return row
}

// Get returns the row stored under id.
func (t *Table[T, P]) Get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

// All returns every stored row in insertion order.
func (t *Table[T, P]) All() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := make([]T, 0, len(t.order))
	for _, id := range t.order {
		rows = append(rows, t.rows[id])
	}
	return rows
}

// Replace overwrites an existing row, keeping its position. The id is taken
// from row itself.
func (t *Table[T, P]) Replace(row T) bool {
	id := P(&row).GetID()

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = row
	return true
}

// Delete removes the row stored under id.
func (t *Table[T, P]) Delete(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of stored rows.
func (t *Table[T, P]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
