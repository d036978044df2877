// Package model defines the component types logged for entities.
//
// # Components
//
//   - Point2D, Point3D: positions
//   - ColorRGBA: packed 0xRRGGBBAA color
//   - Radius: point radius
//   - Label: text label
//   - ClassID: annotation class
//   - Rect2D: axis-aligned rectangle, normalized to XYWH
//
// Every type implements core.Component, so it can be used with the name-free
// batch constructors and visitors:
//
//	points, _ := rowjoin.NewBatch([]model.Point2D{{X: 1, Y: 2}}, nil)
//	view := rowjoin.FromPrimary(points)
//	_ = rowjoin.Visit2(view, func(id core.RowID, p model.Point2D, c rowjoin.Optional[model.ColorRGBA]) {})
package model
