// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goenv/utils/floatutils"
)

// Format formats a matrix for printing
func Format(X mat.Matrix) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// VecClip performs an element-wise clipping of a vector's values such
// that each value a[i] is at least low[i] and at most high[i]. The
// clipped vector is returned and a is left unchanged.
func VecClip(a, low, high mat.Vector) *mat.VecDense {
	if a.Len() != low.Len() || a.Len() != high.Len() {
		panic(fmt.Sprintf("vecClip: vector length %d must match bounds "+
			"lengths %d and %d", a.Len(), low.Len(), high.Len()))
	}

	clipped := mat.NewVecDense(a.Len(), nil)
	for i := 0; i < a.Len(); i++ {
		clipped.SetVec(i, floatutils.Clip(a.AtVec(i), low.AtVec(i),
			high.AtVec(i)))
	}
	return clipped
}
