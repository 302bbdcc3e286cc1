package topk_test

import (
	"fmt"

	"github.com/MurphLaws/influenciae/matrix"
	"github.com/MurphLaws/influenciae/topk"
)

func ExampleAccumulator() {
	acc, _ := topk.New[string](1, 2)

	first, _ := matrix.FromRows([][]float64{{0.2, 0.7}})
	_ = acc.AddShared(first, []string{"a", "b"})
	second, _ := matrix.FromRows([][]float64{{0.9, 0.1}})
	_ = acc.AddShared(second, []string{"c", "d"})

	scores, payloads := acc.Get()
	fmt.Println(scores[0], payloads[0])
	// Output: [0.9 0.7] [c b]
}
