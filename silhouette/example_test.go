package silhouette_test

import (
	"fmt"

	"github.com/katalvlaran/klust/dataset"
	"github.com/katalvlaran/klust/silhouette"
)

// ExampleScore scores a hand-made two-cluster labeling of four points:
// two tight pairs far apart give a silhouette close to 1.
func ExampleScore() {
	ds, _ := dataset.New([]string{"x", "y"}, [][]float64{
		{0, 0}, {0, 1}, {10, 10}, {10, 11},
	})

	score, err := silhouette.Score(ds, []int{1, 1, 2, 2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("silhouette=%.1f\n", score)
	// Output:
	// silhouette=0.9
}

// ExampleSelect scans the standardized built-in vehicle table for the best
// cluster count; the first local maximum of the silhouette curve sits at
// k=2 and clears the 0.5 adequacy bar.
func ExampleSelect() {
	sel, err := silhouette.Select(dataset.Vehicles(), 2, 9, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("k=%d adequate=%v\n", sel.K, sel.Adequate)
	// Output:
	// k=2 adequate=true
}
