package vec3

// AABB is an axis-aligned bounding box: the componentwise interval
// [Min, Max]. Callers are expected to maintain Min <= Max componentwise;
// this package never checks it (a precondition, not a runtime error).
type AABB struct {
	Min, Max Vec3
}

// Union returns the tightest AABB enclosing both a and b.
func Union(a, b AABB) AABB {
	return AABB{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// UnionAll returns the tightest AABB enclosing every box in bvs.
// UnionAll of an empty slice returns the zero-value AABB.
func UnionAll(bvs []AABB) AABB {
	if len(bvs) == 0 {
		return AABB{}
	}

	result := bvs[0]
	for _, bv := range bvs[1:] {
		result = Union(result, bv)
	}

	return result
}

// Centroid returns the midpoint of the box.
func (a AABB) Centroid() Vec3 {
	return a.Min.Add(a.Max).Scale(0.5)
}

// Extent returns the per-axis extent (Max - Min).
func (a AABB) Extent() Vec3 {
	return a.Max.Sub(a.Min)
}

// LongestAxis returns the index (0=X, 1=Y, 2=Z) of the box's greatest extent.
// Ties favor the lower axis index.
func (a AABB) LongestAxis() int {
	e := a.Extent()
	axis := 0
	longest := e.X
	if e.Y > longest {
		axis, longest = 1, e.Y
	}
	if e.Z > longest {
		axis = 2
	}

	return axis
}

// SurfaceArea returns 2*(dx*dy + dy*dz + dz*dx) for the box's extents.
func (a AABB) SurfaceArea() float32 {
	e := a.Extent()

	return 2 * (e.X*e.Y + e.Y*e.Z + e.Z*e.X)
}

// Contains reports whether p lies within the box, inclusive of its faces.
func (a AABB) Contains(p Vec3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// ApproxEqual reports whether a and b agree componentwise within eps.
// Grounded on the reference test harness's DoubleNearPredFormat family:
// every component of Min and Max is compared independently.
func (a AABB) ApproxEqual(b AABB, eps float32) bool {
	return approxEqualV(a.Min, b.Min, eps) && approxEqualV(a.Max, b.Max, eps)
}

func approxEqualV(a, b Vec3, eps float32) bool {
	return absF(a.X-b.X) <= eps && absF(a.Y-b.Y) <= eps && absF(a.Z-b.Z) <= eps
}

func absF(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
