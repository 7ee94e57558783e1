package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"vgfx/core"
)

// objCorner references one face corner: position, texcoord and normal
// indices, 0-based, -1 when absent.
type objCorner struct {
	v, vt, vn int
}

// LoadOBJ parses a Wavefront .obj file into a single indexed mesh. Every
// object and group in the file is merged.
func LoadOBJ(path string) (core.MeshData, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.MeshData{}, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f, filepath.Base(path))
	if err != nil {
		return core.MeshData{}, fmt.Errorf("load obj %q: %w", path, err)
	}
	return mesh, nil
}

// ParseOBJ reads OBJ text from r. Polygons are fan-triangulated and corners
// sharing the same v/vt/vn triple are deduplicated. Normals are generated
// when the file has none.
func ParseOBJ(r io.Reader, name string) (core.MeshData, error) {
	var positions []mgl32.Vec3
	var normals []mgl32.Vec3
	var uvs []mgl32.Vec2
	var corners []objCorner

	log := core.Logger()
	lineNo := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			p, err := parseFloats(fields[1:], 3)
			if err != nil {
				return core.MeshData{}, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, mgl32.Vec3{p[0], p[1], p[2]})

		case "vn":
			n, err := parseFloats(fields[1:], 3)
			if err != nil {
				return core.MeshData{}, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, mgl32.Vec3{n[0], n[1], n[2]})

		case "vt":
			t, err := parseFloats(fields[1:], 2)
			if err != nil {
				return core.MeshData{}, fmt.Errorf("line %d: texcoord: %w", lineNo, err)
			}
			uvs = append(uvs, mgl32.Vec2{t[0], t[1]})

		case "f":
			if len(fields) < 4 {
				return core.MeshData{}, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			face := make([]objCorner, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				c, err := parseCorner(tok, len(positions), len(uvs), len(normals))
				if err != nil {
					return core.MeshData{}, fmt.Errorf("line %d: %w", lineNo, err)
				}
				face = append(face, c)
			}
			// 0-1-2, 0-2-3, 0-3-4, ...
			for i := 1; i+1 < len(face); i++ {
				corners = append(corners, face[0], face[i], face[i+1])
			}

		case "o", "g", "s", "usemtl", "mtllib":
			// Groups are merged and materials are not used; the model tint
			// and texture come from the renderer.

		default:
			log.Warn("obj: ignoring directive", "name", name, "line", lineNo, "directive", fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return core.MeshData{}, fmt.Errorf("scan obj: %w", err)
	}
	if len(corners) == 0 {
		return core.MeshData{}, fmt.Errorf("no faces in %q", name)
	}

	mesh := core.MeshData{Name: name}
	seen := make(map[objCorner]uint32, len(corners))
	for _, c := range corners {
		if idx, ok := seen[c]; ok {
			mesh.Indices = append(mesh.Indices, idx)
			continue
		}
		v := core.Vertex{Position: positions[c.v], Normal: mgl32.Vec3{0, 1, 0}}
		if c.vn >= 0 {
			v.Normal = normals[c.vn]
		}
		if c.vt >= 0 {
			v.UV = uvs[c.vt]
		}
		idx := uint32(len(mesh.Vertices))
		mesh.Vertices = append(mesh.Vertices, v)
		seen[c] = idx
		mesh.Indices = append(mesh.Indices, idx)
	}

	if len(normals) == 0 {
		ComputeNormals(&mesh)
	}
	log.Debug("obj: parsed", "name", name, "vertices", len(mesh.Vertices), "triangles", len(mesh.Indices)/3)
	return mesh, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d components, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseCorner parses "v", "v/vt", "v//vn" or "v/vt/vn". OBJ indices are
// 1-based; negative values count back from the end of the pool so far.
func parseCorner(tok string, nv, nvt, nvn int) (objCorner, error) {
	parts := strings.Split(tok, "/")
	c := objCorner{v: -1, vt: -1, vn: -1}
	var err error
	if c.v, err = resolveIndex(parts[0], nv); err != nil {
		return c, fmt.Errorf("face vertex %q: %w", tok, err)
	}
	if c.v < 0 {
		return c, fmt.Errorf("face vertex %q: missing position", tok)
	}
	if len(parts) > 1 {
		if c.vt, err = resolveIndex(parts[1], nvt); err != nil {
			return c, fmt.Errorf("face texcoord %q: %w", tok, err)
		}
	}
	if len(parts) > 2 {
		if c.vn, err = resolveIndex(parts[2], nvn); err != nil {
			return c, fmt.Errorf("face normal %q: %w", tok, err)
		}
	}
	return c, nil
}

func resolveIndex(s string, count int) (int, error) {
	if s == "" {
		return -1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1, err
	}
	switch {
	case n > 0 && n <= count:
		return n - 1, nil
	case n < 0 && -n <= count:
		return count + n, nil
	default:
		return -1, fmt.Errorf("index %d out of range (have %d)", n, count)
	}
}
