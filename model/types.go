package model

import (
	"fmt"

	"github.com/hupe1980/rowjoin/core"
)

// Component names.
const (
	Point2DName   core.ComponentName = "rerun.point2d"
	Point3DName   core.ComponentName = "rerun.point3d"
	ColorRGBAName core.ComponentName = "rerun.colorrgba"
	RadiusName    core.ComponentName = "rerun.radius"
	LabelName     core.ComponentName = "rerun.label"
	ClassIDName   core.ComponentName = "rerun.class_id"
	Rect2DName    core.ComponentName = "rerun.rect2d"
)

// Point2D is a position in 2D space.
type Point2D struct {
	X float32
	Y float32
}

// ComponentName implements core.Component.
func (Point2D) ComponentName() core.ComponentName { return Point2DName }

func (p Point2D) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Point3D is a position in 3D space.
type Point3D struct {
	X float32
	Y float32
	Z float32
}

// ComponentName implements core.Component.
func (Point3D) ComponentName() core.ComponentName { return Point3DName }

func (p Point3D) String() string { return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z) }

// ColorRGBA is an sRGB color with alpha, packed as 0xRRGGBBAA.
type ColorRGBA uint32

// NewColorRGBA packs the four channels.
func NewColorRGBA(r, g, b, a uint8) ColorRGBA {
	return ColorRGBA(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// ComponentName implements core.Component.
func (ColorRGBA) ComponentName() core.ComponentName { return ColorRGBAName }

// RGBA unpacks the four channels.
func (c ColorRGBA) RGBA() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c ColorRGBA) String() string { return fmt.Sprintf("#%08X", uint32(c)) }

// Radius is the radius of a point or line.
type Radius float32

// ComponentName implements core.Component.
func (Radius) ComponentName() core.ComponentName { return RadiusName }

// Label is a short text attached to an instance.
type Label string

// ComponentName implements core.Component.
func (Label) ComponentName() core.ComponentName { return LabelName }

// ClassID refers to a class in an annotation context.
type ClassID uint16

// ComponentName implements core.Component.
func (ClassID) ComponentName() core.ComponentName { return ClassIDName }
