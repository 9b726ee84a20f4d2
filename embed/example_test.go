package embed_test

import (
	"fmt"

	"github.com/katalvlaran/klust/dataset"
	"github.com/katalvlaran/klust/embed"
)

// ExampleMDS_Reduce projects the 4-column vehicle table onto 2 dimensions
// with classical multidimensional scaling. The result keeps row count and
// order; only the width changes.
func ExampleMDS_Reduce() {
	ds := dataset.Vehicles()

	red, err := embed.MDS{}.Reduce(ds)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%d×%d → %d×%d columns=%v\n",
		ds.Rows(), ds.Cols(), red.Rows(), red.Cols(), red.Columns())
	// Output:
	// 234×4 → 234×2 columns=[dim1 dim2]
}
