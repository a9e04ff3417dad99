package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	gomath "math"
	"os"
	"strconv"
	"strings"
)

// ErrEmptyMesh is returned when a file contains no faces.
var ErrEmptyMesh = errors.New("mesh has no faces")

// objCorner is one face corner: indices into the position and normal lists,
// already resolved to zero-based. normal is -1 when the corner has none.
type objCorner struct {
	position int
	normal   int
}

// LoadOBJ reads and parses an OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	m, err := ParseOBJ(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// ParseOBJ parses positions, normals and faces from OBJ text. Polygons are
// fan-triangulated. Corners without a normal get the flat face normal.
// Texture coordinates, groups and materials are ignored.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	var (
		positions [][3]float32
		normals   [][3]float32
		mesh      Mesh
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", line, err)
			}
			positions = append(positions, v)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", line, err)
			}
			normals = append(normals, n)
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 corners, got %d", line, len(fields)-1)
			}
			corners := make([]objCorner, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				c, err := parseCorner(tok, len(positions), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: face: %w", line, err)
				}
				corners = append(corners, c)
			}
			for i := 1; i+1 < len(corners); i++ {
				mesh.Vertices = appendTriangle(mesh.Vertices, positions, normals,
					corners[0], corners[i], corners[i+1])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading: %w", err)
	}
	if len(mesh.Vertices) == 0 {
		return nil, ErrEmptyMesh
	}

	mesh.computeBounds()
	return &mesh, nil
}

func parseVec3(fields []string) ([3]float32, error) {
	var v [3]float32
	if len(fields) < 3 {
		return v, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return v, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

// parseCorner reads v, v/t, v//n or v/t/n. Negative indices count back from
// the most recent element.
func parseCorner(tok string, numPositions, numNormals int) (objCorner, error) {
	parts := strings.Split(tok, "/")

	pos, err := resolveIndex(parts[0], numPositions)
	if err != nil {
		return objCorner{}, fmt.Errorf("position index %q: %w", tok, err)
	}

	c := objCorner{position: pos, normal: -1}
	if len(parts) == 3 && parts[2] != "" {
		n, err := resolveIndex(parts[2], numNormals)
		if err != nil {
			return objCorner{}, fmt.Errorf("normal index %q: %w", tok, err)
		}
		c.normal = n
	}
	return c, nil
}

func resolveIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0 && i <= count:
		return i - 1, nil
	case i < 0 && -i <= count:
		return count + i, nil
	}
	return 0, fmt.Errorf("out of range [1, %d]", count)
}

func appendTriangle(out []Vertex, positions, normals [][3]float32, a, b, c objCorner) []Vertex {
	corners := [3]objCorner{a, b, c}

	var flat [3]float32
	if a.normal < 0 || b.normal < 0 || c.normal < 0 {
		flat = faceNormal(positions[a.position], positions[b.position], positions[c.position])
	}

	for _, cn := range corners {
		v := Vertex{Position: positions[cn.position], Normal: flat}
		if cn.normal >= 0 {
			v.Normal = normals[cn.normal]
		}
		out = append(out, v)
	}
	return out
}

// faceNormal returns the unit normal of a counter-clockwise triangle, or zero
// for a degenerate one.
func faceNormal(p0, p1, p2 [3]float32) [3]float32 {
	e1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
	e2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
	n := [3]float32{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}
	mag := float32(gomath.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])))
	if mag < 1e-12 {
		return [3]float32{}
	}
	return [3]float32{n[0] / mag, n[1] / mag, n[2] / mag}
}
