package widecell

const (
	// DefaultRows is the default number of window rows.
	DefaultRows = 24
	// DefaultCols is the default number of window columns.
	DefaultCols = 80
)

// Window is a headless character-cell drawing surface: a 2D grid of cells plus
// a cursor. It stands in for a curses window or pad, with no display attached.
//
// A Window performs no locking; it is owned by one logical thread of control
// at a time.
type Window struct {
	rows     int
	cols     int
	cells    [][]Cell
	cursor   *Cursor
	template CellTemplate
	hasDirty bool
}

// Option configures a Window during construction.
type Option func(*Window)

// WithSize sets the window dimensions.
// Values <= 0 are replaced with defaults (24x80).
func WithSize(rows, cols int) Option {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}

	return func(w *Window) {
		w.rows = rows
		w.cols = cols
	}
}

// WithTemplate sets the attributes applied to newly written characters.
func WithTemplate(tmpl CellTemplate) Option {
	return func(w *Window) {
		w.template = tmpl
	}
}

// New creates a window with all cells in default state and the cursor at (0, 0).
func New(opts ...Option) *Window {
	w := &Window{
		rows:     DefaultRows,
		cols:     DefaultCols,
		cursor:   NewCursor(),
		template: NewCellTemplate(),
	}

	for _, opt := range opts {
		opt(w)
	}

	w.cells = make([][]Cell, w.rows)
	for i := range w.cells {
		w.cells[i] = make([]Cell, w.cols)
		for j := range w.cells[i] {
			w.cells[i][j] = NewCell()
		}
	}

	return w
}

// Rows returns the window height in character rows.
func (w *Window) Rows() int {
	return w.rows
}

// Cols returns the window width in character columns.
func (w *Window) Cols() int {
	return w.cols
}

// Cell returns a pointer to the cell at (row, col).
// Returns nil if coordinates are out of bounds.
func (w *Window) Cell(row, col int) *Cell {
	if row < 0 || row >= w.rows || col < 0 || col >= w.cols {
		return nil
	}
	return &w.cells[row][col]
}

// SetCell replaces the cell at (row, col) and marks it dirty.
// Does nothing if coordinates are out of bounds.
func (w *Window) SetCell(row, col int, cell Cell) {
	if row < 0 || row >= w.rows || col < 0 || col >= w.cols {
		return
	}
	cell.MarkDirty()
	w.cells[row][col] = cell
	w.hasDirty = true
}

// Move places the cursor at (row, col), clamped to the window bounds.
func (w *Window) Move(row, col int) {
	w.cursor.Row = clamp(row, 0, w.rows-1)
	w.cursor.Col = clamp(col, 0, w.cols-1)
}

// CursorPos returns the current cursor position as (row, col).
func (w *Window) CursorPos() (int, int) {
	return w.cursor.Row, w.cursor.Col
}

// Cursor returns the window's cursor.
func (w *Window) Cursor() *Cursor {
	return w.cursor
}

// Template returns the attributes applied to newly written characters.
func (w *Window) Template() CellTemplate {
	return w.template
}

// SetTemplate replaces the attributes applied to newly written characters.
func (w *Window) SetTemplate(tmpl CellTemplate) {
	w.template = tmpl
}

// EraseRow resets all cells in the row to default state and marks them dirty.
func (w *Window) EraseRow(row int) {
	if row < 0 || row >= w.rows {
		return
	}
	for col := range w.cells[row] {
		w.cells[row][col].Reset()
		w.cells[row][col].MarkDirty()
	}
	w.hasDirty = true
}

// Erase resets all cells in the window and moves the cursor to (0, 0).
func (w *Window) Erase() {
	for row := range w.cells {
		w.EraseRow(row)
	}
	w.cursor.Row = 0
	w.cursor.Col = 0
}

// Resize changes window dimensions, preserving existing cells where possible.
// Content is kept at the top-left corner. The cursor is clamped into the new
// bounds.
func (w *Window) Resize(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}

	newCells := make([][]Cell, rows)
	for i := range newCells {
		newCells[i] = make([]Cell, cols)
		for j := range newCells[i] {
			if i < w.rows && j < w.cols {
				newCells[i][j] = w.cells[i][j]
			} else {
				newCells[i][j] = NewCell()
			}
			newCells[i][j].MarkDirty()
		}
	}

	w.cells = newCells
	w.rows = rows
	w.cols = cols
	w.hasDirty = true
	w.cursor.Row = clamp(w.cursor.Row, 0, rows-1)
	w.cursor.Col = clamp(w.cursor.Col, 0, cols-1)
}

// HasDirty returns true if any cell has been modified since the last
// ClearDirty call.
func (w *Window) HasDirty() bool {
	return w.hasDirty
}

// DirtyCells returns positions of all modified cells.
func (w *Window) DirtyCells() []Position {
	var positions []Position
	for row := range w.cells {
		for col := range w.cells[row] {
			if w.cells[row][col].IsDirty() {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// ClearDirty resets the dirty state of all cells.
func (w *Window) ClearDirty() {
	for row := range w.cells {
		for col := range w.cells[row] {
			w.cells[row][col].ClearDirty()
		}
	}
	w.hasDirty = false
}

// LineContent returns the text content of a row, trimming trailing spaces.
// Wide character spacers are skipped. Returns an empty string if the row is
// empty or out of bounds.
func (w *Window) LineContent(row int) string {
	if row < 0 || row >= w.rows {
		return ""
	}

	lastNonSpace := -1
	for col := w.cols - 1; col >= 0; col-- {
		cell := &w.cells[row][col]
		if cell.Char != ' ' && cell.Char != 0 && !cell.IsWideSpacer() {
			lastNonSpace = col
			break
		}
	}

	if lastNonSpace < 0 {
		return ""
	}

	runes := make([]rune, 0, lastNonSpace+1)
	for col := range w.cells[row][:lastNonSpace+1] {
		cell := &w.cells[row][col]
		if cell.IsWideSpacer() {
			continue
		}
		if cell.Char == 0 {
			runes = append(runes, ' ')
		} else {
			runes = append(runes, cell.Char)
		}
	}

	return string(runes)
}

// String returns the window content as text, one line per row, with trailing
// blank rows removed.
func (w *Window) String() string {
	lastContent := -1
	for row := w.rows - 1; row >= 0; row-- {
		if w.LineContent(row) != "" {
			lastContent = row
			break
		}
	}

	out := ""
	for row := 0; row <= lastContent; row++ {
		if row > 0 {
			out += "\n"
		}
		out += w.LineContent(row)
	}
	return out
}

// Position identifies a cell location in the window grid (0-based).
type Position struct {
	Row int
	Col int
}

// Before returns true if this position comes before other in reading order
// (top-to-bottom, left-to-right).
func (p Position) Before(other Position) bool {
	if p.Row < other.Row {
		return true
	}
	if p.Row == other.Row && p.Col < other.Col {
		return true
	}
	return false
}

// Equal returns true if both row and column match.
func (p Position) Equal(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
