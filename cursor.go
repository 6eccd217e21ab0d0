package widecell

// Cursor tracks the current write position in a window (0-based coordinates).
type Cursor struct {
	Row     int
	Col     int
	Visible bool
}

// NewCursor creates a visible cursor at (0, 0).
func NewCursor() *Cursor {
	return &Cursor{Visible: true}
}

// CellTemplate defines default attributes applied to newly written characters.
type CellTemplate struct {
	Cell
}

// NewCellTemplate creates a template with default attributes.
func NewCellTemplate() CellTemplate {
	return CellTemplate{Cell: NewCell()}
}
