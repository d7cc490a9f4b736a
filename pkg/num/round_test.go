package num

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.005, 1.0}, // 1.005 is not exactly representable, sits just below
		{33.333333, 33.33},
		{66.666666, 66.67},
		{100, 100},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRoundInt(t *testing.T) {
	if got := RoundInt(59.5); got != 60 {
		t.Errorf("RoundInt(59.5) = %d, want 60", got)
	}
	if got := RoundInt(59.4); got != 59 {
		t.Errorf("RoundInt(59.4) = %d, want 59", got)
	}
}
