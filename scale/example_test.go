package scale_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/klust/dataset"
	"github.com/katalvlaran/klust/scale"
)

// ExampleStandardize demonstrates the core contract: after standardization
// every column has mean 0 and standard deviation 1.
func ExampleStandardize() {
	ds, _ := dataset.New([]string{"displacement", "cty"}, [][]float64{
		{1.8, 29}, {2.8, 18}, {4.6, 12}, {2.0, 26}, {5.7, 11},
	})

	scaled, scaler, err := scale.Standardize(ds)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	col, _ := scaled.Column("cty")
	mean, std := stat.MeanStdDev(col, nil)
	fmt.Printf("cty: |mean|=%.1f std=%.1f (was mean=%.1f)\n", math.Abs(mean), std, scaler.Mean[1])
	// Output:
	// cty: |mean|=0.0 std=1.0 (was mean=19.2)
}
