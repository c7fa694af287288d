package peripherals

import "testing"

func TestAxesToDirections(t *testing.T) {
	cases := []struct {
		x, y                        float32
		up, down, left, right bool
	}{
		{0, 0, false, false, false, false},
		{-0.9, 0, false, false, true, false},
		{0.9, 0, false, false, false, true},
		{0, -0.9, true, false, false, false},
		{0, 0.9, false, true, false, false},
		{-0.9, -0.9, true, false, true, false},
	}
	for _, c := range cases {
		up, down, left, right := axesToDirections(c.x, c.y)
		if up != c.up || down != c.down || left != c.left || right != c.right {
			t.Errorf("axesToDirections(%v, %v) = (%v,%v,%v,%v), want (%v,%v,%v,%v)",
				c.x, c.y, up, down, left, right, c.up, c.down, c.left, c.right)
		}
	}
}
