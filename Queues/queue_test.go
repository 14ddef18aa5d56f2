package Queues

import (
	"errors"
	"testing"
)

func TestArrayQueue(t *testing.T) {
	for _, initCap := range []uint{0, 1, 4} {
		q := MakeArrayQueue[int](initCap)
		if _, err := q.Pop(); !errors.As(err, new(*EmptyQueueError)) {
			t.Errorf("pop on empty queue returned %v", err)
		}
		next := 0
		for i := 0; i < 100; i++ {
			q.Push(i)
			if i%3 == 0 {
				if v, err := q.Pop(); err != nil || v != next {
					t.Errorf("popped %v, %v, want %v", v, err, next)
				}
				next++
			}
		}
		if q.Size() != uint(100-next) {
			t.Errorf("size is %d, want %d", q.Size(), 100-next)
		}
		if q.Peek() != next {
			t.Errorf("peek is %d, want %d", q.Peek(), next)
		}
		for ; !q.Empty(); next++ {
			if v, _ := q.Pop(); v != next {
				t.Errorf("popped %v, want %v", v, next)
			}
		}
		if next != 100 {
			t.Errorf("popped %d items, want 100", next)
		}
		q.Push(7)
		q.Clear()
		if !q.Empty() || q.Peek() != 0 {
			t.Errorf("queue not empty after Clear")
		}
	}
}
