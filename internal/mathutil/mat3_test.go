package mathutil

import (
	"math"
	"testing"
)

func TestMat3FromColumns_MulVec3(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := Vec3{0, 0, 1}
	m := Mat3FromColumns(x, y, z)

	v := Vec3{2, -3, 5}
	if got := m.MulVec3(v); got != v {
		t.Errorf("identity basis: got %v, want %v", got, v)
	}

	// Column i must be the image of basis vector e_i.
	m = Mat3FromColumns(Vec3{0, 0, 1}, Vec3{0, 1, 0}, Vec3{-1, 0, 0})
	got := m.MulVec3(Vec3{1, 0, 0})
	want := Vec3{0, 0, 1}
	if !got.IsEquivalent(want, 1e-12) {
		t.Errorf("MulVec3(e0) = %v, want first column %v", got, want)
	}
}

func TestMat3_TransposeOfOrthonormalIsInverse(t *testing.T) {
	// Orthonormal basis: M^T * M = I.
	x := Vec3{1, 2, 2}.Normalize()
	y := x.Cross(Vec3{0, 1, 0}).Normalize()
	z := x.Cross(y)
	m := Mat3FromColumns(x, y, z)

	p := Mat3Mul(m.Transpose(), m)
	id := Mat3Identity()
	for i := range p {
		if math.Abs(p[i]-id[i]) > 1e-9 {
			t.Fatalf("M^T*M[%d] = %v, want %v", i, p[i], id[i])
		}
	}
}
