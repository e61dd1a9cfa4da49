package filter

import (
	"github.com/RoaringBitmap/roaring"
	"github.com/leapstack-labs/zfdash/internal/dataset"
)

// View is a filtered, read-only projection of a table.
type View struct {
	table    *dataset.Table
	selected *roaring.Bitmap
}

// Table returns the underlying canonical table.
func (v *View) Table() *dataset.Table { return v.table }

// Len returns the number of selected rows.
func (v *View) Len() int { return int(v.selected.GetCardinality()) }

// Rows returns the selected rows in source order.
func (v *View) Rows() []*dataset.Restaurant {
	out := make([]*dataset.Restaurant, 0, v.Len())
	it := v.selected.Iterator()
	for it.HasNext() {
		out = append(out, v.table.Row(int(it.Next())))
	}
	return out
}

// Narrow returns a view of the rows of v that also satisfy keep.
func (v *View) Narrow(keep func(*dataset.Restaurant) bool) *View {
	bm := roaring.New()
	it := v.selected.Iterator()
	for it.HasNext() {
		i := it.Next()
		if keep(v.table.Row(int(i))) {
			bm.Add(i)
		}
	}
	return &View{table: v.table, selected: bm}
}
