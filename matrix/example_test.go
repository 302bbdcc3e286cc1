package matrix_test

import (
	"bytes"
	"fmt"

	"github.com/MurphLaws/influenciae/matrix"
)

// ExamplePseudoInverse inverts a singular 2×2 matrix.
func ExamplePseudoInverse() {
	a, _ := matrix.NewDenseFrom(2, 2, []float64{1, 1, 1, 1})
	pinv, _ := matrix.PseudoInverse(a, 0)
	for i := 0; i < 2; i++ {
		row, _ := pinv.Row(i)
		fmt.Printf("%.2f %.2f\n", row[0], row[1])
	}
	// Output:
	// 0.25 0.25
	// 0.25 0.25
}

// ExampleNormalizeColsL2 shows that zero columns survive normalisation.
func ExampleNormalizeColsL2() {
	x, _ := matrix.NewDenseFrom(2, 2, []float64{0, 0, 2, 0})
	y, norms, _ := matrix.NormalizeColsL2(x)
	fmt.Println(norms)
	fmt.Print(y)
	// Output:
	// [2 0]
	// [0, 0]
	// [1, 0]
}

// ExampleEncode hands a matrix to another process through a byte buffer.
func ExampleEncode() {
	h, _ := matrix.NewIdentity(2)
	var buf bytes.Buffer
	_ = matrix.Encode(&buf, h)
	back, _ := matrix.Decode(&buf)
	fmt.Print(back)
	// Output:
	// [1, 0]
	// [0, 1]
}
