package worklist

import "testing"

func TestWorklistDeduplicatesPending(t *testing.T) {
	W := Empty[int]()
	W.Add(1)
	W.Add(2)
	if W.Add(1) {
		t.Errorf("1 is already pending and should not be enqueued again")
	}
	if W.Len() != 2 {
		t.Errorf("expected 2 pending elements, got %d", W.Len())
	}

	if next := W.GetNext(); next != 1 {
		t.Errorf("expected FIFO order, got %d first", next)
	}
	if !W.Add(1) {
		t.Errorf("1 is no longer pending and should be enqueued")
	}
}

func TestStartVisitsEveryElement(t *testing.T) {
	visited := []int{}
	Start(0, func(next int, add func(int)) {
		visited = append(visited, next)
		if next < 4 {
			add(next + 1)
			add(next + 1)
		}
	})

	if len(visited) != 5 {
		t.Errorf("expected to visit 0..4 once each, visited %v", visited)
	}
}
