package registry

import (
	"testing"

	"liftdispatch/src/types"
)

func TestSetAndClearAreIdempotent(t *testing.T) {
	w := New()

	w.SetWaiting(3, types.Up)
	w.SetWaiting(3, types.Up)
	if !w.HasWaiting(3, types.Up) {
		t.Errorf("expected waiting at 3 up after SetWaiting")
	}
	if w.HasWaiting(3, types.Down) {
		t.Errorf("direction sets must be disjoint, got waiting at 3 down")
	}

	w.ClearWaiting(3, types.Up)
	if w.HasWaiting(3, types.Up) {
		t.Errorf("expected no waiting at 3 up after ClearWaiting")
	}

	// Clearing an absent entry must be a no-op.
	w.ClearWaiting(3, types.Up)
	w.ClearWaiting(7, types.Down)
}

func TestHasWaitingAbove(t *testing.T) {
	w := New()

	if w.HasWaitingAbove(0, types.Up) {
		t.Errorf("empty set: HasWaitingAbove must be false")
	}

	w.SetWaiting(5, types.Up)
	if !w.HasWaitingAbove(2, types.Up) {
		t.Errorf("expected waiting above 2 for up")
	}
	if w.HasWaitingAbove(5, types.Up) {
		t.Errorf("strictly above: floor 5 itself must not count")
	}
	if w.HasWaitingAbove(2, types.Down) {
		t.Errorf("up entry must not be visible as down")
	}
}

func TestHasWaitingPastUsesBothDirections(t *testing.T) {
	w := New()

	if w.HasWaitingPast(3, types.Up) || w.HasWaitingPast(3, types.Down) {
		t.Errorf("empty union: HasWaitingPast must be false")
	}

	w.SetWaiting(6, types.Down)
	if !w.HasWaitingPast(3, types.Up) {
		t.Errorf("a down waiter above must count as past for an up elevator")
	}
	if w.HasWaitingPast(6, types.Up) {
		t.Errorf("strictly above: floor 6 itself must not count")
	}

	w.SetWaiting(1, types.Up)
	if !w.HasWaitingPast(3, types.Down) {
		t.Errorf("an up waiter below must count as past for a down elevator")
	}
}

func TestNonContiguousFloorIdentifiers(t *testing.T) {
	w := New()

	w.SetWaiting(-2, types.Down)
	w.SetWaiting(40, types.Up)

	if !w.HasWaitingPast(10, types.Up) {
		t.Errorf("expected waiting past 10 going up (floor 40)")
	}
	if !w.HasWaitingPast(10, types.Down) {
		t.Errorf("expected waiting past 10 going down (floor -2)")
	}
	if w.HasWaitingAbove(40, types.Up) {
		t.Errorf("nothing above 40")
	}
}
