package elev

import (
	"testing"

	"liftdispatch/src/types"
)

func TestHeadingStartsIdle(t *testing.T) {
	s := NewState(0)
	if !s.Heading.Idle() {
		t.Errorf("new elevator must start idle, got %v", s.Heading)
	}

	s.Heading = types.MovingIn(types.Up)
	if s.Heading.Idle() {
		t.Errorf("dispatched elevator must not be idle")
	}
	if !s.Heading.Is(types.Up) {
		t.Errorf("expected heading up, got %v", s.Heading)
	}

	s.Heading = types.MovingIn(s.Heading.Dir().Opposite())
	if !s.Heading.Is(types.Down) {
		t.Errorf("expected heading down after reversal, got %v", s.Heading)
	}
}

func TestStopSetIsIdempotent(t *testing.T) {
	s := NewState(1)

	s.AddStop(4)
	s.AddStop(4)
	if s.StopCount() != 1 {
		t.Errorf("duplicate AddStop must not grow the set, got %d stops", s.StopCount())
	}
	if !s.HasStop(4) {
		t.Errorf("expected stop at 4")
	}

	s.RemoveStop(4)
	s.RemoveStop(4)
	if s.HasStop(4) || s.StopCount() != 0 {
		t.Errorf("expected empty stop set after removal")
	}
}

func TestHasStopsBesides(t *testing.T) {
	s := NewState(2)

	s.AddStop(3)
	if s.HasStopsBesides(3) {
		t.Errorf("the floor being served must not count as pending")
	}

	s.AddStop(6)
	if !s.HasStopsBesides(3) {
		t.Errorf("expected a pending stop besides 3")
	}
}
