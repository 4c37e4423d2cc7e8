package game

import "testing"

func TestMapKey(t *testing.T) {
	tests := []struct {
		keys string
		want Command
	}{
		{"wWiI", CommandUp},
		{"sSkK", CommandDown},
		{"dDlL", CommandRight},
		{"aAjJ", CommandLeft},
		{"qQ", CommandQuit},
		{"xz \r\n1/\x1b", CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			for _, r := range tt.keys {
				if got := MapKey(r); got != tt.want {
					t.Errorf("MapKey(%q) = %v, want %v", r, got, tt.want)
				}
			}
		})
	}
}

func TestCommandDirection(t *testing.T) {
	tests := []struct {
		cmd    Command
		dir    Direction
		moving bool
	}{
		{CommandUp, DirUp, true},
		{CommandDown, DirDown, true},
		{CommandLeft, DirLeft, true},
		{CommandRight, DirRight, true},
		{CommandQuit, 0, false},
		{CommandNone, 0, false},
	}

	for _, tt := range tests {
		dir, ok := tt.cmd.Direction()
		if ok != tt.moving {
			t.Errorf("%v.Direction() ok = %v, want %v", tt.cmd, ok, tt.moving)
			continue
		}
		if ok && dir != tt.dir {
			t.Errorf("%v.Direction() = %v, want %v", tt.cmd, dir, tt.dir)
		}
	}
}

func TestDirectionStep(t *testing.T) {
	origin := Position{5, 5}
	tests := []struct {
		dir  Direction
		want Position
	}{
		{DirUp, Position{4, 5}},
		{DirDown, Position{6, 5}},
		{DirLeft, Position{5, 4}},
		{DirRight, Position{5, 6}},
	}

	for _, tt := range tests {
		if got := origin.Step(tt.dir); got != tt.want {
			t.Errorf("Step(%v) = %+v, want %+v", tt.dir, got, tt.want)
		}
	}
}
