// Package core contains the fundamental types shared by the textgrid packages.
package core

import "fmt"

// Point represents a cell coordinate.
// X is the column and Y is the row; origin (0,0) is top-left.
type Point struct {
	X, Y int
}

// String returns the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Y, p.X)
}

// Size represents grid dimensions in cells.
type Size struct {
	Rows int
	Cols int
}

// Area returns the number of cells.
func (s Size) Area() int {
	return s.Rows * s.Cols
}

// Contains checks if a point lies inside the size.
func (s Size) Contains(p Point) bool {
	return p.Y >= 0 && p.Y < s.Rows && p.X >= 0 && p.X < s.Cols
}

// Valid reports whether both dimensions are at least one.
func (s Size) Valid() bool {
	return s.Rows >= 1 && s.Cols >= 1
}

// String returns the size as "RxC".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}
