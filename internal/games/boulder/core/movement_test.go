package core

import "testing"

func TestEditPosition(t *testing.T) {
	origin := C(3, 3)
	cases := []struct {
		movement Movement
		want     Coord
	}{
		{MoveUp, C(3, 2)},
		{MoveDown, C(3, 4)},
		{MoveLeft, C(2, 3)},
		{MoveRight, C(4, 3)},
		{Afk, C(3, 3)},
	}
	for _, tc := range cases {
		if got := tc.movement.EditPosition(origin); !got.Equal(tc.want) {
			t.Errorf("%v.EditPosition(%v) = %v, want %v", tc.movement, origin, got, tc.want)
		}
	}
}

func TestHorizontal(t *testing.T) {
	if !MoveLeft.Horizontal() || !MoveRight.Horizontal() {
		t.Fatal("left/right are horizontal")
	}
	if MoveUp.Horizontal() || MoveDown.Horizontal() || Afk.Horizontal() {
		t.Fatal("up/down/afk are not horizontal")
	}
}
