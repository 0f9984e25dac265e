package core

// PieceStatus is the lifecycle state of a piece. Moving -> Frozen is one-way.
type PieceStatus uint8

const (
	PieceMoving PieceStatus = iota
	PieceFrozen
)

// String returns the string representation of a piece status.
func (s PieceStatus) String() string {
	switch s {
	case PieceMoving:
		return "moving"
	case PieceFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// Piece is the active falling piece. It paints its footprint into the grid
// it is given on each call and never keeps a reference to that grid.
type Piece struct {
	shape  Shape
	matrix Matrix
	color  BlockColor
	status PieceStatus
	anchor Coord // Grid position of matrix cell (0,0)
}

// Spawn creates the first piece of a session with a random shape and color
// and paints it at anchor. The caller guarantees the footprint is free.
func Spawn(g *Grid, anchor Coord, r Rand) *Piece {
	p, ok := Place(g, anchor, RandomShape(r), RandomColor(r))
	if !ok {
		return nil
	}
	return p
}

// SpawnOrGameOver creates the piece that replaces prev. The shape differs from
// prev's and the color follows prev's in the sequence. If any target cell is
// occupied it returns false without touching the grid; the caller treats that
// as game over.
func SpawnOrGameOver(g *Grid, anchor Coord, prev *Piece, r Rand) (*Piece, bool) {
	return Place(g, anchor, RandomShapeExcept(r, prev.shape), prev.color.Next())
}

// Place paints a new moving piece of the given shape and color at anchor.
// Returns false, leaving the grid unchanged, if the footprint leaves the
// board or overlaps an occupied cell.
func Place(g *Grid, anchor Coord, shape Shape, color BlockColor) (*Piece, bool) {
	p := &Piece{
		shape:  shape,
		matrix: shape.Matrix(),
		color:  color,
		status: PieceMoving,
		anchor: anchor,
	}
	for _, c := range p.Footprint() {
		if !g.InBounds(c.Y, c.X) || g.At(c.Y, c.X).Occupied() {
			return nil, false
		}
	}
	p.paint(g)
	return p, true
}

// Shape returns the piece kind.
func (p *Piece) Shape() Shape { return p.shape }

// Matrix returns the current (possibly rotated) occupancy matrix.
func (p *Piece) Matrix() Matrix { return p.matrix }

// Color returns the piece color.
func (p *Piece) Color() BlockColor { return p.color }

// Status returns whether the piece is still moving.
func (p *Piece) Status() PieceStatus { return p.status }

// Anchor returns the grid position of the matrix's top-left cell.
func (p *Piece) Anchor() Coord { return p.anchor }

// Footprint returns the absolute cells the piece occupies, row-major.
func (p *Piece) Footprint() []Coord {
	return footprint(p.matrix, p.anchor)
}

func footprint(m Matrix, anchor Coord) []Coord {
	cells := make([]Coord, 0, 4)
	for y := range MatrixSize {
		for x := range MatrixSize {
			if m[y][x] == 1 {
				cells = append(cells, anchor.Add(y, x))
			}
		}
	}
	return cells
}

// TryMove shifts the piece by (dy, dx). A blocked downward move freezes the
// piece. Returns false when the move is rejected or the piece is frozen.
//
// Target cells occupied by the piece itself are not collisions: the cell at
// local (y+dy, x+dx) is vacated by this same move.
func (p *Piece) TryMove(g *Grid, dy, dx int) bool {
	if p.status != PieceMoving {
		return false
	}

	next := p.anchor.Add(dy, dx)
	for y := range MatrixSize {
		for x := range MatrixSize {
			if p.matrix[y][x] == 0 {
				continue
			}
			ty, tx := next.Y+y, next.X+x
			if !g.InBounds(ty, tx) {
				return p.block(g, dy)
			}
			if g.At(ty, tx).Occupied() && !p.matrix.Filled(y+dy, x+dx) {
				return p.block(g, dy)
			}
		}
	}

	p.erase(g)
	p.anchor = next
	p.paint(g)
	return true
}

// block rejects a move, freezing the piece if the move was downward.
func (p *Piece) block(g *Grid, dy int) bool {
	if dy >= 1 {
		p.freeze(g)
	}
	return false
}

// MoveLeft moves the piece one column left.
func (p *Piece) MoveLeft(g *Grid) bool { return p.TryMove(g, 0, -1) }

// MoveRight moves the piece one column right.
func (p *Piece) MoveRight(g *Grid) bool { return p.TryMove(g, 0, 1) }

// MoveDown moves the piece one row down, freezing it if blocked.
func (p *Piece) MoveDown(g *Grid) bool { return p.TryMove(g, 1, 0) }

// TryRotate turns the piece clockwise in place. There is no kick search:
// the rotation is rejected if any rotated cell leaves the board or lands on
// a cell not covered by the current footprint.
func (p *Piece) TryRotate(g *Grid) bool {
	if p.status != PieceMoving || !p.shape.Rotates() {
		return false
	}

	rotated := Rotate(p.matrix)
	for y := range MatrixSize {
		for x := range MatrixSize {
			if rotated[y][x] == 0 {
				continue
			}
			ty, tx := p.anchor.Y+y, p.anchor.X+x
			if !g.InBounds(ty, tx) {
				return false
			}
			if g.At(ty, tx).Occupied() && p.matrix[y][x] == 0 {
				return false
			}
		}
	}

	p.erase(g)
	p.matrix = rotated
	p.paint(g)
	return true
}

// freeze locks the piece and turns its cells into frozen board content.
func (p *Piece) freeze(g *Grid) {
	p.status = PieceFrozen
	for _, c := range p.Footprint() {
		g.CellAt(c.Y, c.X).Status = CellFrozen
	}
}

func (p *Piece) erase(g *Grid) {
	for _, c := range p.Footprint() {
		*g.CellAt(c.Y, c.X) = EmptyCell()
	}
}

func (p *Piece) paint(g *Grid) {
	for _, c := range p.Footprint() {
		*g.CellAt(c.Y, c.X) = Cell{Status: CellMoving, Color: p.color}
	}
}
