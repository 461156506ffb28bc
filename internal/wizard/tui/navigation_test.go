package tui

import "testing"

func TestMove(t *testing.T) {
	tests := []struct {
		name string
		from Focus
		key  NavKey
		rows int
		want Focus
	}{
		// Username
		{"username down enters table", Focus{RegionUsername, NoRow}, KeyDown, 3, Focus{RegionTable, 0}},
		{"username enter enters table", Focus{RegionUsername, NoRow}, KeyEnter, 3, Focus{RegionTable, 0}},
		{"username down with empty table stays", Focus{RegionUsername, NoRow}, KeyDown, 0, Focus{RegionUsername, NoRow}},
		{"username up stays", Focus{RegionUsername, NoRow}, KeyUp, 3, Focus{RegionUsername, NoRow}},
		{"username left stays", Focus{RegionUsername, NoRow}, KeyLeft, 3, Focus{RegionUsername, NoRow}},
		{"username right stays", Focus{RegionUsername, NoRow}, KeyRight, 3, Focus{RegionUsername, NoRow}},

		// Table row movement
		{"table up moves a row", Focus{RegionTable, 2}, KeyUp, 3, Focus{RegionTable, 1}},
		{"table down moves a row", Focus{RegionTable, 0}, KeyDown, 3, Focus{RegionTable, 1}},
		{"table up at row 0 exits to username", Focus{RegionTable, 0}, KeyUp, 3, Focus{RegionUsername, NoRow}},
		{"table up without selection exits to username", Focus{RegionTable, NoRow}, KeyUp, 3, Focus{RegionUsername, NoRow}},
		{"table down at last row exits to pattern", Focus{RegionTable, 2}, KeyDown, 3, Focus{RegionPatternInput, NoRow}},
		{"table down without selection exits to pattern", Focus{RegionTable, NoRow}, KeyDown, 3, Focus{RegionPatternInput, NoRow}},
		{"table down on single row exits to pattern", Focus{RegionTable, 0}, KeyDown, 1, Focus{RegionPatternInput, NoRow}},
		{"table left stays", Focus{RegionTable, 1}, KeyLeft, 3, Focus{RegionTable, 1}},
		{"table right stays", Focus{RegionTable, 1}, KeyRight, 3, Focus{RegionTable, 1}},

		// PatternInput
		{"pattern down to add button", Focus{RegionPatternInput, NoRow}, KeyDown, 3, Focus{RegionAddButton, NoRow}},
		{"pattern right at end to add button", Focus{RegionPatternInput, NoRow}, KeyRightAtEnd, 3, Focus{RegionAddButton, NoRow}},
		{"pattern up selects last row", Focus{RegionPatternInput, NoRow}, KeyUp, 3, Focus{RegionTable, 2}},
		{"pattern up with empty table", Focus{RegionPatternInput, NoRow}, KeyUp, 0, Focus{RegionTable, NoRow}},
		{"pattern enter stays", Focus{RegionPatternInput, NoRow}, KeyEnter, 3, Focus{RegionPatternInput, NoRow}},
		{"pattern left stays", Focus{RegionPatternInput, NoRow}, KeyLeft, 3, Focus{RegionPatternInput, NoRow}},

		// AddButton
		{"add up to pattern", Focus{RegionAddButton, NoRow}, KeyUp, 3, Focus{RegionPatternInput, NoRow}},
		{"add left to pattern", Focus{RegionAddButton, NoRow}, KeyLeft, 3, Focus{RegionPatternInput, NoRow}},
		{"add down to vip", Focus{RegionAddButton, NoRow}, KeyDown, 3, Focus{RegionVipInput, NoRow}},
		{"add right to continue", Focus{RegionAddButton, NoRow}, KeyRight, 3, Focus{RegionContinueButton, NoRow}},
		{"add enter stays", Focus{RegionAddButton, NoRow}, KeyEnter, 3, Focus{RegionAddButton, NoRow}},

		// VipInput
		{"vip up to add button", Focus{RegionVipInput, NoRow}, KeyUp, 3, Focus{RegionAddButton, NoRow}},
		{"vip down to continue", Focus{RegionVipInput, NoRow}, KeyDown, 3, Focus{RegionContinueButton, NoRow}},
		{"vip left stays", Focus{RegionVipInput, NoRow}, KeyLeft, 3, Focus{RegionVipInput, NoRow}},
		{"vip right stays", Focus{RegionVipInput, NoRow}, KeyRight, 3, Focus{RegionVipInput, NoRow}},

		// ContinueButton
		{"continue up to vip", Focus{RegionContinueButton, NoRow}, KeyUp, 3, Focus{RegionVipInput, NoRow}},
		{"continue left to add button", Focus{RegionContinueButton, NoRow}, KeyLeft, 3, Focus{RegionAddButton, NoRow}},
		{"continue down stays", Focus{RegionContinueButton, NoRow}, KeyDown, 3, Focus{RegionContinueButton, NoRow}},
		{"continue right stays", Focus{RegionContinueButton, NoRow}, KeyRight, 3, Focus{RegionContinueButton, NoRow}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Move(tt.from, tt.key, tt.rows)
			if got != tt.want {
				t.Errorf("Move(%v/%d, %v, %d) = %v/%d, want %v/%d",
					tt.from.Region, tt.from.Row, tt.key, tt.rows,
					got.Region, got.Row, tt.want.Region, tt.want.Row)
			}
		})
	}
}

func TestMove_NeverWraps(t *testing.T) {
	// Repeated up from the top row must settle at Username, never the
	// bottom of the table.
	f := Focus{RegionTable, 0}
	f = Move(f, KeyUp, 5)
	f = Move(f, KeyUp, 5)
	if f.Region != RegionUsername {
		t.Errorf("focus = %v, want username", f.Region)
	}

	// Repeated down from the last row must leave the table downward.
	f = Focus{RegionTable, 4}
	f = Move(f, KeyDown, 5)
	if f.Region != RegionPatternInput {
		t.Errorf("focus = %v, want pattern input", f.Region)
	}
}

func TestClampRow(t *testing.T) {
	tests := []struct {
		name string
		from Focus
		rows int
		want Focus
	}{
		{"row past end snaps to last", Focus{RegionTable, 4}, 3, Focus{RegionTable, 2}},
		{"row in range unchanged", Focus{RegionTable, 1}, 3, Focus{RegionTable, 1}},
		{"empty table clears selection", Focus{RegionTable, 0}, 0, Focus{RegionTable, NoRow}},
		{"non-table focus unchanged", Focus{RegionVipInput, NoRow}, 0, Focus{RegionVipInput, NoRow}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampRow(tt.from, tt.rows); got != tt.want {
				t.Errorf("ClampRow(%v, %d) = %v, want %v", tt.from, tt.rows, got, tt.want)
			}
		})
	}
}
