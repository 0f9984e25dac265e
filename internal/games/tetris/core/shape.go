package core

import (
	"fmt"
	"strings"
)

// MatrixSize is the side length of every piece matrix.
const MatrixSize = 4

// Matrix is a piece occupancy matrix indexed [y][x]; 1 marks a filled cell.
type Matrix [MatrixSize][MatrixSize]uint8

// Filled reports whether local cell (y, x) is filled.
// Coordinates outside the matrix are never filled.
func (m Matrix) Filled(y, x int) bool {
	if y < 0 || y >= MatrixSize || x < 0 || x >= MatrixSize {
		return false
	}
	return m[y][x] == 1
}

// Shape identifies one of the seven piece kinds.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
	ShapeCount // Sentinel value for iteration
)

// Spawn orientation for each shape.
var shapeMatrices = [ShapeCount]Matrix{
	ShapeI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeJ: {
		{1, 0, 0, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeL: {
		{0, 0, 1, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeO: {
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeS: {
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeT: {
		{0, 1, 0, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeZ: {
		{1, 1, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
}

// Matrix returns the spawn orientation matrix for the shape.
func (s Shape) Matrix() Matrix {
	if s >= ShapeCount {
		return Matrix{}
	}
	return shapeMatrices[s]
}

// Rotates reports whether the shape changes under rotation.
// The O piece is the only one that does not.
func (s Shape) Rotates() bool {
	return s != ShapeO
}

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	default:
		return "?"
	}
}

// ParseShape converts a single-letter name (case-insensitive) to a Shape.
func ParseShape(s string) (Shape, error) {
	for shape := range ShapeCount {
		if strings.EqualFold(s, shape.String()) {
			return shape, nil
		}
	}
	return 0, fmt.Errorf("tetris: invalid shape %q", s)
}

// AllShapes returns every shape in declaration order.
func AllShapes() []Shape {
	return []Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}
}

// RandomShape picks a shape uniformly.
func RandomShape(r Rand) Shape {
	return Shape(r.Intn(int(ShapeCount)))
}

// RandomShapeExcept picks a shape uniformly among those different from excluded.
// Uses rejection sampling.
func RandomShapeExcept(r Rand, excluded Shape) Shape {
	for {
		s := RandomShape(r)
		if s != excluded {
			return s
		}
	}
}

// Rotate returns the matrix turned 90 degrees clockwise:
// transpose, then reverse the column order of each row.
func Rotate(m Matrix) Matrix {
	var out Matrix
	for y := range MatrixSize {
		for x := range MatrixSize {
			out[y][x] = m[x][y]
		}
	}
	for y := range MatrixSize {
		for x := range MatrixSize / 2 {
			out[y][x], out[y][MatrixSize-1-x] = out[y][MatrixSize-1-x], out[y][x]
		}
	}
	return out
}
