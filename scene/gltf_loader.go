package scene

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"vgfx/core"
)

// LoadGLTF opens a .gltf or .glb file and flattens every triangle primitive
// reachable from the scene into one mesh, baking node transforms into the
// vertices.
func LoadGLTF(path string) (core.MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return core.MeshData{}, fmt.Errorf("gltf open %q: %w", path, err)
	}
	mesh, err := FlattenGLTF(doc, filepath.Base(path))
	if err != nil {
		return core.MeshData{}, fmt.Errorf("load gltf %q: %w", path, err)
	}
	return mesh, nil
}

// FlattenGLTF merges the geometry of an already decoded document.
func FlattenGLTF(doc *gltf.Document, name string) (core.MeshData, error) {
	out := core.MeshData{Name: name}

	var roots []int
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		roots = doc.Scenes[*doc.Scene].Nodes
	} else {
		// No default scene: every parentless node is a root.
		hasParent := make([]bool, len(doc.Nodes))
		for _, n := range doc.Nodes {
			for _, c := range n.Children {
				if c < len(hasParent) {
					hasParent[c] = true
				}
			}
		}
		for i := range doc.Nodes {
			if !hasParent[i] {
				roots = append(roots, i)
			}
		}
	}

	var walk func(idx int, parent mgl32.Mat4, depth int) error
	walk = func(idx int, parent mgl32.Mat4, depth int) error {
		if idx < 0 || idx >= len(doc.Nodes) {
			return fmt.Errorf("node %d out of range", idx)
		}
		if depth > len(doc.Nodes) {
			return fmt.Errorf("node hierarchy has a cycle at node %d", idx)
		}
		node := doc.Nodes[idx]
		world := parent.Mul4(nodeMatrix(node))
		if node.Mesh != nil && *node.Mesh < len(doc.Meshes) {
			if err := appendGLTFMesh(doc, doc.Meshes[*node.Mesh], world, &out); err != nil {
				return fmt.Errorf("node %d: %w", idx, err)
			}
		}
		for _, child := range node.Children {
			if err := walk(child, world, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	if len(doc.Nodes) == 0 {
		// Meshes without a node tree are taken as-is.
		for _, m := range doc.Meshes {
			if err := appendGLTFMesh(doc, m, mgl32.Ident4(), &out); err != nil {
				return core.MeshData{}, err
			}
		}
	}
	for _, r := range roots {
		if err := walk(r, mgl32.Ident4(), 0); err != nil {
			return core.MeshData{}, err
		}
	}

	if len(out.Indices) == 0 {
		return core.MeshData{}, fmt.Errorf("no triangle geometry in %q", name)
	}
	return out, nil
}

var identity64 = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// nodeMatrix returns the local transform of n. glTF stores matrices
// column-major, the same layout as mgl32.
func nodeMatrix(n *gltf.Node) mgl32.Mat4 {
	if n.Matrix != [16]float64{} && n.Matrix != identity64 {
		var out mgl32.Mat4
		for i, v := range n.Matrix {
			out[i] = float32(v)
		}
		return out
	}
	t := n.TranslationOrDefault()
	r := n.RotationOrDefault() // x, y, z, w
	s := n.ScaleOrDefault()
	q := mgl32.Quat{W: float32(r[3]), V: mgl32.Vec3{float32(r[0]), float32(r[1]), float32(r[2])}}
	return mgl32.Translate3D(float32(t[0]), float32(t[1]), float32(t[2])).
		Mul4(q.Mat4()).
		Mul4(mgl32.Scale3D(float32(s[0]), float32(s[1]), float32(s[2])))
}

func appendGLTFMesh(doc *gltf.Document, gm *gltf.Mesh, world mgl32.Mat4, out *core.MeshData) error {
	normalMat := world.Mat3().Inv().Transpose()
	for pi, prim := range gm.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			core.Logger().Warn("gltf: skipping non-triangle primitive", "mesh", gm.Name, "primitive", pi, "mode", prim.Mode)
			continue
		}
		part, err := readGLTFPrimitive(doc, prim)
		if err != nil {
			return fmt.Errorf("mesh %q primitive %d: %w", gm.Name, pi, err)
		}
		for i := range part.Vertices {
			v := &part.Vertices[i]
			v.Position = mgl32.TransformCoordinate(v.Position, world)
			if n := normalMat.Mul3x1(v.Normal); n.Len() > 0 {
				v.Normal = n.Normalize()
			}
		}
		out.Append(part)
	}
	return nil
}

func readGLTFPrimitive(doc *gltf.Document, prim *gltf.Primitive) (core.MeshData, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return core.MeshData{}, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return core.MeshData{}, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return core.MeshData{}, fmt.Errorf("normals: %w", err)
		}
	}
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return core.MeshData{}, fmt.Errorf("texcoords: %w", err)
		}
	}

	part := core.MeshData{Vertices: make([]core.Vertex, len(positions))}
	for i, p := range positions {
		v := core.Vertex{Position: mgl32.Vec3(p), Normal: mgl32.Vec3{0, 1, 0}}
		if i < len(normals) {
			v.Normal = mgl32.Vec3(normals[i])
		}
		if i < len(uvs) {
			v.UV = mgl32.Vec2(uvs[i])
		}
		part.Vertices[i] = v
	}

	if prim.Indices != nil {
		part.Indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return core.MeshData{}, fmt.Errorf("indices: %w", err)
		}
	} else {
		part.Indices = make([]uint32, len(positions))
		for i := range part.Indices {
			part.Indices[i] = uint32(i)
		}
	}
	if len(normals) == 0 {
		ComputeNormals(&part)
	}
	return part, nil
}
