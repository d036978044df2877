package rowjoin

import (
	"github.com/hupe1980/rowjoin/core"
)

// MaxVisitArity is the largest number of components a single visitor accepts
// (the primary plus four secondaries).
const MaxVisitArity = 5

// Visit1 calls fn once per row of v, in row order, with the primary value.
func Visit1[C0 core.Component](v *EntityView, fn func(core.RowID, C0)) error {
	c0, err := column[C0](v.primary)
	if err != nil {
		return err
	}
	for i, val := range c0 {
		fn(v.primary.RowIDAt(i), val)
	}
	return nil
}

// Visit2 calls fn once per row of v, in row order, with the primary value and
// the joined value of C1 (None where the row has no C1).
func Visit2[C0, C1 core.Component](v *EntityView, fn func(core.RowID, C0, Optional[C1])) error {
	c0, err := column[C0](v.primary)
	if err != nil {
		return err
	}
	c1, err := secondary[C1](v)
	if err != nil {
		return err
	}
	for i, val := range c0 {
		o1, _ := c1.next()
		fn(v.primary.RowIDAt(i), val, o1)
	}
	return nil
}

// Visit3 is Visit2 with two secondary components.
func Visit3[C0, C1, C2 core.Component](v *EntityView, fn func(core.RowID, C0, Optional[C1], Optional[C2])) error {
	c0, err := column[C0](v.primary)
	if err != nil {
		return err
	}
	c1, err := secondary[C1](v)
	if err != nil {
		return err
	}
	c2, err := secondary[C2](v)
	if err != nil {
		return err
	}
	for i, val := range c0 {
		o1, _ := c1.next()
		o2, _ := c2.next()
		fn(v.primary.RowIDAt(i), val, o1, o2)
	}
	return nil
}

// Visit4 is Visit2 with three secondary components.
func Visit4[C0, C1, C2, C3 core.Component](v *EntityView, fn func(core.RowID, C0, Optional[C1], Optional[C2], Optional[C3])) error {
	c0, err := column[C0](v.primary)
	if err != nil {
		return err
	}
	c1, err := secondary[C1](v)
	if err != nil {
		return err
	}
	c2, err := secondary[C2](v)
	if err != nil {
		return err
	}
	c3, err := secondary[C3](v)
	if err != nil {
		return err
	}
	for i, val := range c0 {
		o1, _ := c1.next()
		o2, _ := c2.next()
		o3, _ := c3.next()
		fn(v.primary.RowIDAt(i), val, o1, o2, o3)
	}
	return nil
}

// Visit5 is Visit2 with four secondary components.
func Visit5[C0, C1, C2, C3, C4 core.Component](v *EntityView, fn func(core.RowID, C0, Optional[C1], Optional[C2], Optional[C3], Optional[C4])) error {
	c0, err := column[C0](v.primary)
	if err != nil {
		return err
	}
	c1, err := secondary[C1](v)
	if err != nil {
		return err
	}
	c2, err := secondary[C2](v)
	if err != nil {
		return err
	}
	c3, err := secondary[C3](v)
	if err != nil {
		return err
	}
	c4, err := secondary[C4](v)
	if err != nil {
		return err
	}
	for i, val := range c0 {
		o1, _ := c1.next()
		o2, _ := c2.next()
		o3, _ := c3.next()
		o4, _ := c4.next()
		fn(v.primary.RowIDAt(i), val, o1, o2, o3, o4)
	}
	return nil
}
