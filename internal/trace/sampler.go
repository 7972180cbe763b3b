package trace

import (
	"math"

	"softpt/internal/mathutil"
)

// TangentFrame builds an orthonormal basis {tangent, normal, bitangent}
// around the given unit normal. The seed vector is (-1,0,0) unless the
// normal is nearly parallel to it, in which case (0,1,0) is used so the
// cross products stay non-degenerate.
func TangentFrame(normal mathutil.Vec3) (tangent, bitangent mathutil.Vec3) {
	right := mathutil.Vec3{-1, 0, 0}
	up := mathutil.Vec3{0, 1, 0}

	seed := right
	if normal.IsEquivalent(right, mathutil.Epsilon) {
		seed = up
	}
	bitangent = normal.Cross(seed).Normalize()
	tangent = bitangent.Cross(normal).Normalize()
	return tangent, bitangent
}

// RandomVector maps two uniform samples in [0,1) to a direction on the
// hemisphere above normal. The samples pick a direction over the +Y
// hemisphere which is then rotated into world space with the tangent
// frame as a change of basis. The result always satisfies
// dot(result, normal) >= -Epsilon.
func RandomVector(normal mathutil.Vec3, r0, r1 float64) mathutil.Vec3 {
	// (x, y, z) = (sqrt(1-r0^2)*cos(2*pi*r1), r0, sqrt(1-r0^2)*sin(2*pi*r1))
	sqrtFactor := math.Sqrt(1.0 - r0*r0)
	local := mathutil.Vec3{
		sqrtFactor * math.Cos(2.0*math.Pi*r1),
		r0,
		sqrtFactor * math.Sin(2.0*math.Pi*r1),
	}

	tangent, bitangent := TangentFrame(normal)
	basis := mathutil.Mat3FromColumns(tangent, normal, bitangent)
	return basis.MulVec3(local)
}
