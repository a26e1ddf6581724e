package renderer

// Unit primitives in the interleaved layout position(3) uv(2) normal(3).

// NewCubeModel builds a unit cube centred on the origin.
func NewCubeModel() *Model {
	const h = 0.5

	interleaved := []float32{
		// +Z
		-h, -h, h, 0, 0, 0, 0, 1,
		h, -h, h, 1, 0, 0, 0, 1,
		h, h, h, 1, 1, 0, 0, 1,
		-h, h, h, 0, 1, 0, 0, 1,
		// -Z
		-h, -h, -h, 1, 0, 0, 0, -1,
		-h, h, -h, 1, 1, 0, 0, -1,
		h, h, -h, 0, 1, 0, 0, -1,
		h, -h, -h, 0, 0, 0, 0, -1,
		// -X
		-h, -h, -h, 0, 0, -1, 0, 0,
		-h, -h, h, 1, 0, -1, 0, 0,
		-h, h, h, 1, 1, -1, 0, 0,
		-h, h, -h, 0, 1, -1, 0, 0,
		// +X
		h, -h, -h, 1, 0, 1, 0, 0,
		h, h, -h, 1, 1, 1, 0, 0,
		h, h, h, 0, 1, 1, 0, 0,
		h, -h, h, 0, 0, 1, 0, 0,
		// +Y
		-h, h, -h, 0, 1, 0, 1, 0,
		-h, h, h, 0, 0, 0, 1, 0,
		h, h, h, 1, 0, 0, 1, 0,
		h, h, -h, 1, 1, 0, 1, 0,
		// -Y
		-h, -h, -h, 1, 1, 0, -1, 0,
		h, -h, -h, 0, 1, 0, -1, 0,
		h, -h, h, 0, 0, 0, -1, 0,
		-h, -h, h, 1, 0, 0, -1, 0,
	}

	indices := []int32{
		0, 1, 2, 2, 3, 0,
		4, 5, 6, 6, 7, 4,
		8, 9, 10, 10, 11, 8,
		12, 13, 14, 14, 15, 12,
		16, 17, 18, 18, 19, 16,
		20, 21, 22, 22, 23, 20,
	}

	m := newModel(positionsOf(interleaved), interleaved, indices)
	m.Name = "Cube"
	return m
}

// NewPlaneModel builds a unit quad on the XZ plane facing +Y.
func NewPlaneModel() *Model {
	const h = 0.5

	interleaved := []float32{
		-h, 0, -h, 0, 0, 0, 1, 0,
		-h, 0, h, 0, 1, 0, 1, 0,
		h, 0, h, 1, 1, 0, 1, 0,
		h, 0, -h, 1, 0, 0, 1, 0,
	}
	indices := []int32{0, 1, 2, 2, 3, 0}

	m := newModel(positionsOf(interleaved), interleaved, indices)
	m.Name = "Plane"
	return m
}

func positionsOf(interleaved []float32) []float32 {
	const stride = 8
	out := make([]float32, 0, len(interleaved)/stride*3)
	for i := 0; i+2 < len(interleaved); i += stride {
		out = append(out, interleaved[i], interleaved[i+1], interleaved[i+2])
	}
	return out
}
