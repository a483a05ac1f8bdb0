// Package pca_test contains runnable documentation examples.
package pca_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpca/matrix"
	"github.com/katalvlaran/lvlpca/pca"
)

// buildData assembles the 4x2 demonstration dataset.
func buildData() *matrix.Dense {
	m, _ := matrix.NewDense(4, 2)
	rows := [][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}}
	for i, row := range rows {
		for j, v := range row {
			_ = m.Set(i, j, v)
		}
	}

	return m
}

// ExampleFit demonstrates fitting a one-component model on a rank-deficient
// dataset: the single component captures all of the variance.
func ExampleFit() {
	model, err := pca.Fit(buildData(), 1)
	if err != nil {
		fmt.Println("fit failed:", err)
		return
	}

	mean := model.Mean()
	fmt.Printf("mean: [%.1f %.1f]\n", mean[0], mean[1])
	fmt.Printf("dominant eigenvalue: %.4f\n", model.Eigenvalues()[0])
	fmt.Printf("explained variance: %.2f\n", model.ExplainedVarianceRatio())
	// Output:
	// mean: [4.0 5.0]
	// dominant eigenvalue: 13.3333
	// explained variance: 1.00
}

// ExampleModel_Transform projects the training data onto the first principal
// component. Note that Transform centers its argument in place, so a fresh
// copy of the data is used.
func ExampleModel_Transform() {
	model, err := pca.Fit(buildData(), 1)
	if err != nil {
		fmt.Println("fit failed:", err)
		return
	}

	projected, err := model.Transform(buildData())
	if err != nil {
		fmt.Println("transform failed:", err)
		return
	}
	for i := 0; i < projected.Rows(); i++ {
		v, _ := projected.At(i, 0)
		fmt.Printf("%.4f\n", v)
	}
	// Output:
	// -4.2426
	// -1.4142
	// 1.4142
	// 4.2426
}
