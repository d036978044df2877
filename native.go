package rowjoin

import (
	"github.com/hupe1980/rowjoin/core"
)

// NativeComponent is a component column in native form: values plus optional
// explicit row ids (nil for dense).
type NativeComponent[C core.Component] struct {
	RowIDs []core.RowID
	Values []C
}

// Native pairs row ids with values. Pass nil rowIDs for a dense column.
func Native[C core.Component](rowIDs []core.RowID, values []C) NativeComponent[C] {
	return NativeComponent[C]{RowIDs: rowIDs, Values: values}
}

func (n NativeComponent[C]) batch() (*Batch, error) {
	return NewBatch(n.Values, n.RowIDs)
}

// FromNative builds a view with c0 as primary.
func FromNative[C0 core.Component](c0 NativeComponent[C0]) (*EntityView, error) {
	primary, err := c0.batch()
	if err != nil {
		return nil, err
	}
	return FromPrimary(primary), nil
}

// FromNative2 builds a view with c0 as primary and c1 as secondary.
func FromNative2[C0, C1 core.Component](c0 NativeComponent[C0], c1 NativeComponent[C1]) (*EntityView, error) {
	v, err := FromNative(c0)
	if err != nil {
		return nil, err
	}
	return withNative(v, c1)
}

// FromNative3 builds a view with c0 as primary and two secondaries.
func FromNative3[C0, C1, C2 core.Component](c0 NativeComponent[C0], c1 NativeComponent[C1], c2 NativeComponent[C2]) (*EntityView, error) {
	v, err := FromNative2(c0, c1)
	if err != nil {
		return nil, err
	}
	return withNative(v, c2)
}

// FromNative4 builds a view with c0 as primary and three secondaries.
func FromNative4[C0, C1, C2, C3 core.Component](c0 NativeComponent[C0], c1 NativeComponent[C1], c2 NativeComponent[C2], c3 NativeComponent[C3]) (*EntityView, error) {
	v, err := FromNative3(c0, c1, c2)
	if err != nil {
		return nil, err
	}
	return withNative(v, c3)
}

// FromNative5 builds a view with c0 as primary and four secondaries.
func FromNative5[C0, C1, C2, C3, C4 core.Component](c0 NativeComponent[C0], c1 NativeComponent[C1], c2 NativeComponent[C2], c3 NativeComponent[C3], c4 NativeComponent[C4]) (*EntityView, error) {
	v, err := FromNative4(c0, c1, c2, c3)
	if err != nil {
		return nil, err
	}
	return withNative(v, c4)
}

func withNative[C core.Component](v *EntityView, c NativeComponent[C]) (*EntityView, error) {
	b, err := c.batch()
	if err != nil {
		return nil, err
	}
	return v.WithComponent(b)
}
