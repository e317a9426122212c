package turtle

import "testing"

func TestMoveReverse(t *testing.T) {
	tests := []struct {
		in   Kind
		want Kind
	}{
		{Forward, Back},
		{Back, Forward},
		{TurnLeft, TurnRight},
		{TurnRight, TurnLeft},
	}
	for _, tt := range tests {
		m := Move{Kind: tt.in, Amount: 7.5}
		m.Reverse()
		if m.Kind != tt.want {
			t.Errorf("reverse %v: got %v want %v", tt.in, m.Kind, tt.want)
		}
		if m.Amount != 7.5 {
			t.Errorf("reverse %v changed amount to %g", tt.in, m.Amount)
		}
		m.Reverse()
		if m.Kind != tt.in {
			t.Errorf("double reverse %v: got %v", tt.in, m.Kind)
		}
	}
}

func TestMoveDilate(t *testing.T) {
	tests := []struct {
		kind   Kind
		amount float64
		factor float64
		want   float64
	}{
		{Forward, 10, 2, 20},
		{Back, 10, 0.5, 5},
		{Forward, 4, 0, 0},
		{Back, 4, -1, -4},
		{TurnLeft, 90, 3, 90},
		{TurnRight, 45, 0, 45},
	}
	for _, tt := range tests {
		m := Move{Kind: tt.kind, Amount: tt.amount}
		m.Dilate(tt.factor)
		if m.Amount != tt.want {
			t.Errorf("dilate %v %g by %g: got %g want %g",
				tt.kind, tt.amount, tt.factor, m.Amount, tt.want)
		}
	}
}

func TestMoveCopyIsIndependent(t *testing.T) {
	m := Move{Kind: Forward, Amount: 3}
	c := m
	c.Reverse()
	c.Dilate(10)
	if m.Kind != Forward || m.Amount != 3 {
		t.Errorf("mutating a copy changed the original: %v", m)
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		m    Move
		want string
	}{
		{Move{Forward, 10}, "forward 10"},
		{Move{Back, 2.5}, "back 2.5"},
		{Move{TurnLeft, 90}, "left 90"},
		{Move{TurnRight, 45}, "right 45"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
