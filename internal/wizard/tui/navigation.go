package tui

// Region identifies one interactive area of the wizard form.
type Region int

const (
	RegionUsername Region = iota
	RegionTable
	RegionPatternInput
	RegionAddButton
	RegionVipInput
	RegionContinueButton
)

// String returns the region name for logging and tests.
func (r Region) String() string {
	switch r {
	case RegionUsername:
		return "username"
	case RegionTable:
		return "table"
	case RegionPatternInput:
		return "pattern"
	case RegionAddButton:
		return "add"
	case RegionVipInput:
		return "vip"
	case RegionContinueButton:
		return "continue"
	default:
		return "unknown"
	}
}

// NoRow marks a table focus without a selected row.
const NoRow = -1

// Focus is the complete keyboard focus state: the active region plus the
// table's row sub-state. Row is only meaningful when Region is RegionTable.
type Focus struct {
	Region Region
	Row    int
}

// NavKey is a directional navigation event, already abstracted away from raw
// terminal key names. KeyRightAtEnd is "right" pressed while the pattern
// input cursor sits at the end of its text; a plain right inside text edits
// the input and never reaches Move.
type NavKey int

const (
	KeyUp NavKey = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyRightAtEnd
	KeyEnter
)

// Move computes the next focus from the current focus, a navigation key, and
// the number of table rows. It is a pure function with no rendering or model
// dependency. Boundary transitions win over in-table row movement, and row
// movement never wraps.
func Move(f Focus, k NavKey, rows int) Focus {
	switch f.Region {
	case RegionUsername:
		if k == KeyDown || k == KeyEnter {
			if rows > 0 {
				return Focus{Region: RegionTable, Row: 0}
			}
		}
		return f

	case RegionTable:
		switch k {
		case KeyUp:
			if f.Row <= 0 || f.Row == NoRow {
				return Focus{Region: RegionUsername, Row: NoRow}
			}
			return Focus{Region: RegionTable, Row: f.Row - 1}
		case KeyDown:
			if f.Row == NoRow || f.Row >= rows-1 {
				return Focus{Region: RegionPatternInput, Row: NoRow}
			}
			return Focus{Region: RegionTable, Row: f.Row + 1}
		}
		return f

	case RegionPatternInput:
		switch k {
		case KeyDown, KeyRightAtEnd:
			return Focus{Region: RegionAddButton, Row: NoRow}
		case KeyUp:
			if rows > 0 {
				return Focus{Region: RegionTable, Row: rows - 1}
			}
			return Focus{Region: RegionTable, Row: NoRow}
		}
		return f

	case RegionAddButton:
		switch k {
		case KeyUp, KeyLeft:
			return Focus{Region: RegionPatternInput, Row: NoRow}
		case KeyDown:
			return Focus{Region: RegionVipInput, Row: NoRow}
		case KeyRight:
			return Focus{Region: RegionContinueButton, Row: NoRow}
		}
		return f

	case RegionVipInput:
		switch k {
		case KeyUp:
			return Focus{Region: RegionAddButton, Row: NoRow}
		case KeyDown:
			return Focus{Region: RegionContinueButton, Row: NoRow}
		}
		return f

	case RegionContinueButton:
		switch k {
		case KeyUp:
			return Focus{Region: RegionVipInput, Row: NoRow}
		case KeyLeft:
			return Focus{Region: RegionAddButton, Row: NoRow}
		}
		return f
	}

	return f
}

// ClampRow adjusts a table focus after the store shrinks. A row past the end
// snaps to the new last row, and an empty table clears the selection.
func ClampRow(f Focus, rows int) Focus {
	if f.Region != RegionTable || f.Row == NoRow {
		return f
	}
	if rows == 0 {
		f.Row = NoRow
		return f
	}
	if f.Row >= rows {
		f.Row = rows - 1
	}
	return f
}
