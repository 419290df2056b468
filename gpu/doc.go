// Package gpu prepares linalg values for upload to a WebGPU pipeline.
//
// It packs matrices and point lists into the byte layouts WGSL expects,
// describes the matching vertex buffer layouts with gputypes, and compiles
// the bundled transform shader to SPIR-V with naga. It never touches a
// device: creating buffers and submitting work is left to the caller's
// wgpu setup.
//
// Usage:
//
//	model := linalg.Translation4(linalg.NewVector3[float32](1, 2, 3))
//	uniform := gpu.PackMatrix4(model)      // 64 bytes, mat4x4<f32>
//	verts := gpu.PackVertices3(points)     // tightly packed vec3<f32>
//	spirv, err := gpu.CompileTransformShader()
package gpu
