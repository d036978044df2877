package model

import (
	"fmt"

	"github.com/hupe1980/rowjoin/core"
)

// RectFormat describes how the four numbers of a rectangle are laid out.
type RectFormat uint8

const (
	// RectXYWH is [x, y, w, h], with x,y = left,top.
	RectXYWH RectFormat = iota
	// RectYXHW is [y, x, h, w], with x,y = left,top.
	RectYXHW
	// RectXYXY is [x0, y0, x1, y1], with x0,y0 = left,top and x1,y1 = right,bottom.
	RectXYXY
	// RectYXYX is [y0, x0, y1, x1], with x0,y0 = left,top and x1,y1 = right,bottom.
	RectYXYX
	// RectXCYCWH is [x_center, y_center, width, height].
	RectXCYCWH
	// RectXCYCW2H2 is [x_center, y_center, width/2, height/2].
	RectXCYCW2H2
)

func (f RectFormat) String() string {
	switch f {
	case RectXYWH:
		return "XYWH"
	case RectYXHW:
		return "YXHW"
	case RectXYXY:
		return "XYXY"
	case RectYXYX:
		return "YXYX"
	case RectXCYCWH:
		return "XCYCWH"
	case RectXCYCW2H2:
		return "XCYCW2H2"
	default:
		return fmt.Sprintf("RectFormat(%d)", uint8(f))
	}
}

// Rect2D is an axis-aligned rectangle stored as left, top, width, height.
type Rect2D struct {
	X float32
	Y float32
	W float32
	H float32
}

// ComponentName implements core.Component.
func (Rect2D) ComponentName() core.ComponentName { return Rect2DName }

// NewRect2D converts v, laid out according to format, into XYWH.
func NewRect2D(format RectFormat, v [4]float32) (Rect2D, error) {
	switch format {
	case RectXYWH:
		return Rect2D{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
	case RectYXHW:
		return Rect2D{X: v[1], Y: v[0], W: v[3], H: v[2]}, nil
	case RectXYXY:
		return Rect2D{X: v[0], Y: v[1], W: v[2] - v[0], H: v[3] - v[1]}, nil
	case RectYXYX:
		return Rect2D{X: v[1], Y: v[0], W: v[3] - v[1], H: v[2] - v[0]}, nil
	case RectXCYCWH:
		return Rect2D{X: v[0] - v[2]/2, Y: v[1] - v[3]/2, W: v[2], H: v[3]}, nil
	case RectXCYCW2H2:
		return Rect2D{X: v[0] - v[2], Y: v[1] - v[3], W: 2 * v[2], H: 2 * v[3]}, nil
	default:
		return Rect2D{}, fmt.Errorf("unknown rect format: %v", format)
	}
}

// Min returns the top-left corner.
func (r Rect2D) Min() Point2D { return Point2D{X: r.X, Y: r.Y} }

// Max returns the bottom-right corner.
func (r Rect2D) Max() Point2D { return Point2D{X: r.X + r.W, Y: r.Y + r.H} }
