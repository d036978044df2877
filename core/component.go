package core

// ComponentName is the stable name of a component column, e.g. "rerun.point2d".
type ComponentName string

// Component is implemented by native types that carry their own component name.
// Name-free APIs (NewBatch, the visitors) resolve columns through it.
type Component interface {
	ComponentName() ComponentName
}

// NameOf returns the component name declared by C.
func NameOf[C Component]() ComponentName {
	var zero C
	return zero.ComponentName()
}
