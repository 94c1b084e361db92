package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/predict/matrix"
)

// ExampleDense_Inverse demonstrates inverting a small system and
// recovering the identity.
//
// Scenario:
//
//	m = | 2 1 |        m⁻¹ = |  1 −1 |
//	    | 1 1 |               | −1  2 |
func ExampleDense_Inverse() {
	m, _ := matrix.NewDense(2, 2)
	_ = m.Set(0, 0, 2)
	_ = m.Set(0, 1, 1)
	_ = m.Set(1, 0, 1)
	_ = m.Set(1, 1, 1)

	inv, err := m.Inverse()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	prod, _ := m.Mul(inv)
	fmt.Print(inv)
	fmt.Print(prod)
	// Output:
	// [1, -1]
	// [-1, 2]
	// [1, 0]
	// [0, 1]
}
