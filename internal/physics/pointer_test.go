package physics

import "testing"

func TestApplyPointerUnknown(t *testing.T) {
	b := NewBody(10, 10, 0.3, -0.2, 5, "")
	for i := 0; i < 10; i++ {
		if ApplyPointer(&b, Pointer{}, PushFactorIdle) {
			t.Fatal("unknown pointer applied an impulse")
		}
	}
	if b.DX != 0.3 || b.DY != -0.2 {
		t.Errorf("velocity changed to (%v, %v)", b.DX, b.DY)
	}
}

func TestApplyPointer(t *testing.T) {
	tests := []struct {
		name           string
		pointer        Pointer
		factor         float64
		applied        bool
		wantDX, wantDY float64
	}{
		{"far away", Pointer{X: 180, Y: 100, Known: true}, PushFactorIdle, false, 0, 0},
		{"just outside", Pointer{X: 150, Y: 100, Known: true}, PushFactorIdle, false, 0, 0},
		{"idle push", Pointer{X: 110, Y: 100, Known: true}, PushFactorIdle, true, -1, 0},
		{"pressed push", Pointer{X: 110, Y: 100, Known: true}, PushFactorPressed, true, -2, 0},
		{"diagonal", Pointer{X: 106, Y: 92, Known: true}, PushFactorIdle, true, -0.6, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(100, 100, 0, 0, 5, "")
			got := ApplyPointer(&b, tt.pointer, tt.factor)
			if got != tt.applied {
				t.Errorf("applied = %v, want %v", got, tt.applied)
			}
			if !near(b.DX, tt.wantDX) || !near(b.DY, tt.wantDY) {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", b.DX, b.DY, tt.wantDX, tt.wantDY)
			}
		})
	}
}
