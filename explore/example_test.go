package explore_test

import (
	"fmt"

	"github.com/katalvlaran/klust/dataset"
	"github.com/katalvlaran/klust/explore"
)

// ExampleRun walks the whole workflow over the built-in vehicle table:
// standardize, scan k=2..9 with seeded k-means, score by silhouette.
// The primary pass is already adequate, so no 2-D fallback is needed.
func ExampleRun() {
	rep, err := explore.Run(dataset.Vehicles())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	final := rep.Final()
	fmt.Printf("k=%d adequate=%v reduced=%v\n", final.K, final.Adequate, rep.UsedReduction)
	// Output:
	// k=2 adequate=true reduced=false
}

// ExampleRun_withReduction forces the classical-MDS comparison pass; the
// embedded space confirms the same two-cluster structure.
func ExampleRun_withReduction() {
	rep, err := explore.Run(dataset.Vehicles(), explore.WithAlwaysReduce())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("primary k=%d, embedded k=%d (%d-D view)\n",
		rep.Primary.K, rep.Reduced.K, rep.Embedded.Cols())
	// Output:
	// primary k=2, embedded k=2 (2-D view)
}
