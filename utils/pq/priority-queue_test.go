package pq

import "testing"

func TestPriorityQueueOrder(t *testing.T) {
	q := Empty(func(a, b int) bool { return a < b })
	for _, x := range []int{5, 1, 4, 1, 3} {
		q.Add(x)
	}

	if q.Len() != 4 {
		t.Errorf("duplicates should be ignored, got %d elements", q.Len())
	}

	expected := []int{1, 3, 4, 5}
	for _, e := range expected {
		if got := q.GetNext(); got != e {
			t.Errorf("got %d, expected %d", got, e)
		}
	}

	if !q.IsEmpty() {
		t.Errorf("queue should be empty")
	}
}
