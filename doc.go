// Package rowjoin reconstructs typed, per-row views of entity data stored as
// sparse columnar component batches.
//
// Each component of an entity is its own column, optionally paired with
// explicit row ids. A column without row ids is dense: value i belongs to row i.
// An EntityView picks one batch as primary, which defines the rows, and joins
// any number of secondary batches against it by row id.
//
// # Quick Start
//
//	view, _ := rowjoin.FromNative2(
//	    rowjoin.Native(nil, points),                 // rows 0..len(points)-1
//	    rowjoin.Native([]core.RowID{2, 4}, colors),  // colors for rows 2 and 4
//	)
//
//	_ = rowjoin.Visit2(view, func(id core.RowID, p model.Point2D, c rowjoin.Optional[model.ColorRGBA]) {
//	    color := c.OrElse(defaultColor)
//	    draw(p, color)
//	})
//
// # Typed Access
//
// Batches are type-erased. Typed access names the native type and fails with
// *ErrTypeMismatch if it differs from the type the batch was built from:
//
//	it, err := rowjoin.IterComponent[model.ColorRGBA](view, model.ColorRGBAName)
//	for c := range it {
//	    ...
//	}
//
// # Row Ids
//
// Row ids must be sorted ascending without duplicates. Joins are a linear merge
// and do not check this; Batch.Validate and WithRowIDValidation check on demand.
//
// # Splats
//
// A batch built with NewSplat holds one value with row id core.SplatRowID.
// Joined as a secondary it is present on every row.
//
// # Engine
//
// Engine builds views from a Source (the store holding the batches) and adds
// logging, metrics and admission control:
//
//	engine := rowjoin.NewEngine(store,
//	    rowjoin.WithLogger(rowjoin.NewTextLogger(slog.LevelInfo)),
//	    rowjoin.WithResourceController(resource.NewController(resource.Config{MaxBatchRows: 1 << 20})),
//	)
//	view, err := engine.Query(ctx, rowjoin.Request{
//	    Entity:     "world/points",
//	    Primary:    model.Point2DName,
//	    Components: []core.ComponentName{model.ColorRGBAName},
//	})
package rowjoin
