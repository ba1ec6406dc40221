package snake

import "testing"

func TestIsColliding(t *testing.T) {
	tests := []struct {
		name      string
		snake     []Cell
		self      bool
		wall      bool
		colliding bool
	}{
		{"clear", []Cell{{5, 5}, {6, 5}, {7, 5}}, false, false, false},
		{"single cell", []Cell{{0, 0}}, false, false, false},
		{"head on body", []Cell{{6, 5}, {5, 5}, {6, 5}}, true, false, true},
		{"left of board", []Cell{{-1, 10}, {0, 10}}, false, true, true},
		{"below board", []Cell{{3, 20}, {3, 19}}, false, true, true},
		{"tail out of board is not checked", []Cell{{0, 0}, {-1, 0}}, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSelfCollision(tt.snake); got != tt.self {
				t.Errorf("IsSelfCollision = %v, expected %v", got, tt.self)
			}
			if got := IsWallCollision(20, tt.snake); got != tt.wall {
				t.Errorf("IsWallCollision = %v, expected %v", got, tt.wall)
			}
			if got := IsColliding(20, tt.snake); got != tt.colliding {
				t.Errorf("IsColliding = %v, expected %v", got, tt.colliding)
			}
		})
	}
}

func TestOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if d.Opposite() != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, d.Opposite(), want)
		}
	}
}

func TestCellStep(t *testing.T) {
	c := Cell{X: 3, Y: 3}
	tests := []struct {
		dir    Direction
		expect Cell
	}{
		{DirUp, Cell{3, 2}},
		{DirDown, Cell{3, 4}},
		{DirLeft, Cell{2, 3}},
		{DirRight, Cell{4, 3}},
	}
	for _, tt := range tests {
		if got := c.Step(tt.dir); got != tt.expect {
			t.Errorf("Step(%v) = %v, expected %v", tt.dir, got, tt.expect)
		}
	}
}
