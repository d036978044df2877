package rowjoin_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/rowjoin"
	"github.com/hupe1980/rowjoin/core"
	"github.com/hupe1980/rowjoin/model"
	"github.com/hupe1980/rowjoin/testutil"
)

// ExampleVisit2 demonstrates visiting points with sparse colors.
func ExampleVisit2() {
	points := []model.Point2D{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}
	colors := []model.ColorRGBA{0xff0000ff}

	view, err := rowjoin.FromNative2(
		rowjoin.Native(nil, points),
		rowjoin.Native([]core.RowID{1}, colors),
	)
	if err != nil {
		log.Fatal(err)
	}

	err = rowjoin.Visit2(view, func(id core.RowID, p model.Point2D, c rowjoin.Optional[model.ColorRGBA]) {
		fmt.Println(id, p, c)
	})
	if err != nil {
		log.Fatal(err)
	}
	// Output:
	// 0 (1, 2) None
	// 1 (3, 4) Some(#FF0000FF)
	// 2 (5, 6) None
}

// ExampleIterComponent demonstrates iterating a secondary component.
func ExampleIterComponent() {
	view, err := rowjoin.FromNative2(
		rowjoin.Native([]core.RowID{0, 17, 42, 96}, []model.Point2D{{}, {}, {}, {}}),
		rowjoin.Native([]core.RowID{17, 19, 44, 96, 254}, []model.ColorRGBA{17, 19, 44, 96, 254}),
	)
	if err != nil {
		log.Fatal(err)
	}

	it, err := rowjoin.IterComponent[model.ColorRGBA](view, model.ColorRGBAName)
	if err != nil {
		log.Fatal(err)
	}
	for c := range it {
		fmt.Println(c)
	}
	// Output:
	// None
	// Some(#00000011)
	// None
	// Some(#00000060)
}

// ExampleEngine_Query demonstrates building a view from a source.
func ExampleEngine_Query() {
	store := testutil.NewMemStore()

	labels, _ := rowjoin.NewBatch([]model.Label{"left", "right"}, nil)
	store.Insert("world/boxes", labels)
	store.Insert("world/boxes", rowjoin.NewSplat(model.ClassID(7)))

	engine := rowjoin.NewEngine(store)
	view, err := engine.Query(context.Background(), rowjoin.Request{
		Entity:     "world/boxes",
		Primary:    model.LabelName,
		Components: []core.ComponentName{model.ClassIDName},
	})
	if err != nil {
		log.Fatal(err)
	}

	_ = rowjoin.Visit2(view, func(_ core.RowID, l model.Label, c rowjoin.Optional[model.ClassID]) {
		fmt.Println(l, c)
	})
	// Output:
	// left Some(7)
	// right Some(7)
}
