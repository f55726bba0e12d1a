package math

// GeometryGenerateNormals returns one normal per position, computed from the
// faces described by indices. Each vertex gets the normal of the last face
// referencing it; smoothing is a separate pass. A trailing partial triangle
// and out-of-range indices are skipped.
func GeometryGenerateNormals(positions []Vec3, indices []uint32) []Vec3 {
	normals := make([]Vec3, len(positions))
	count := uint32(len(positions))
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		if i0 >= count || i1 >= count || i2 >= count {
			continue
		}

		edge1 := positions[i1].Sub(positions[i0])
		edge2 := positions[i2].Sub(positions[i0])
		normal := edge1.Cross(edge2).Normalized()

		normals[i0] = normal
		normals[i1] = normal
		normals[i2] = normal
	}
	return normals
}
