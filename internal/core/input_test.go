package core

import (
	"math"
	"testing"
)

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionUp) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionPause)

	if !f.Has(ActionUp) || !f.Has(ActionPause) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionUp) || f.Has(ActionPause) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameDirection(t *testing.T) {
	diag := 1 / math.Sqrt2

	tests := []struct {
		name     string
		actions  []Action
		expected Vec2
	}{
		{"idle", nil, V(0, 0)},
		{"up", []Action{ActionUp}, V(0, -1)},
		{"down", []Action{ActionDown}, V(0, 1)},
		{"left", []Action{ActionLeft}, V(-1, 0)},
		{"right", []Action{ActionRight}, V(1, 0)},
		{"diagonal normalized", []Action{ActionRight, ActionDown}, V(diag, diag)},
		{"opposing cancel", []Action{ActionLeft, ActionRight}, V(0, 0)},
		{"non-movement ignored", []Action{ActionPause}, V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			got := f.Direction()
			if !vecAlmostEqual(got, tc.expected) {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
			if got.Len() > 1+1e-9 {
				t.Errorf("Direction magnitude %f exceeds 1", got.Len())
			}
		})
	}
}
