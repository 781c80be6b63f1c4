package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chewxy/math32"

	"github.com/Faultbox/meshlab/pkg/math"
)

// maxVertices is the most vertices a uint16 index list can address.
const maxVertices = 1 << 16

// Build parses OBJ text into an indexed mesh.
//
// Only v, vn and f records are read; anything else is skipped. Faces use
// their first three corners. Corners are deduplicated by their position
// and normal references, so "3/1/2" and "3//2" produce one output vertex.
func Build(text string) (*Mesh, error) {
	return BuildReader("", strings.NewReader(text))
}

// LoadFile reads and builds the OBJ file at path.
func LoadFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mesh: %w", err)
	}
	defer f.Close()

	return BuildReader(filepath.Base(path), f)
}

// BuildReader parses OBJ text from r. name is only used in errors.
func BuildReader(name string, r io.Reader) (*Mesh, error) {
	b := newBuilder(name)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := b.line(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mesh %s: %w", name, err)
	}

	return b.finish()
}

type builder struct {
	mesh *Mesh

	srcPositions [][3]float32
	srcNormals   [][3]float32

	// (position, normal) reference -> output index
	dedup map[cornerKey]uint16
	// set by the first corner with a normal reference
	withNormals bool
}

func newBuilder(name string) *builder {
	return &builder{
		mesh: &Mesh{
			Name:      name,
			Primitive: Triangles,
			Bounds:    emptyBounds(),
		},
		dedup: make(map[cornerKey]uint16),
	}
}

func (b *builder) line(raw string) error {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "v":
		p := parseTriple(fields[1:])
		b.srcPositions = append(b.srcPositions, p)
		b.mesh.Bounds.add(p)
	case "vn":
		b.srcNormals = append(b.srcNormals, parseTriple(fields[1:]))
	case "f":
		// A face needs three corners; shorter records are skipped.
		if len(fields) < 4 {
			return nil
		}
		for _, corner := range fields[1:4] {
			if err := b.corner(corner); err != nil {
				return err
			}
		}
	}
	return nil
}

// cornerKey identifies a face corner by its resolved 0-based position and
// normal indices. normal is -1 when the corner has none. A reference that
// does not resolve is keyed by its raw text instead.
type cornerKey struct {
	position int
	normal   int
	raw      string
}

var zeroNormal = [3]float32{}

func (b *builder) corner(ref string) error {
	parts := strings.Split(ref, "/")

	pi, posOK := resolve(len(b.srcPositions), parts[0])
	ni, normalOK := -1, true
	hasNormal := len(parts) > 2 && parts[2] != ""
	if hasNormal {
		ni, normalOK = resolve(len(b.srcNormals), parts[2])
	}

	key := cornerKey{position: pi, normal: ni}
	if !posOK || !normalOK {
		key = cornerKey{raw: ref}
	}

	if idx, ok := b.dedup[key]; ok {
		b.mesh.Indices = append(b.mesh.Indices, idx)
		return nil
	}

	next := b.mesh.VertexCount()
	if next >= maxVertices {
		return &ParseError{Name: b.mesh.Name, Reason: fmt.Sprintf("more than %d unique vertices", maxVertices)}
	}

	pos := at(b.srcPositions, pi, posOK)
	if !posOK {
		b.mesh.InvalidRefs++
	}
	b.mesh.Positions = append(b.mesh.Positions, pos[0], pos[1], pos[2])

	// Normals stay parallel to positions once any corner carries one.
	n := zeroNormal
	if hasNormal {
		n = at(b.srcNormals, ni, normalOK)
		if !normalOK {
			b.mesh.InvalidRefs++
		}
		if !b.withNormals {
			b.withNormals = true
			b.mesh.Normals = make([]float32, 3*next, 3*(next+1))
		}
	}
	if b.withNormals {
		b.mesh.Normals = append(b.mesh.Normals, n[0], n[1], n[2])
	}

	idx := uint16(next)
	b.dedup[key] = idx
	b.mesh.Indices = append(b.mesh.Indices, idx)
	return nil
}

func (b *builder) finish() (*Mesh, error) {
	m := b.mesh
	if len(b.srcPositions) == 0 || !m.Bounds.Valid() {
		return nil, &ParseError{Name: m.Name, Reason: "no vertex positions"}
	}

	ext := m.Bounds.Extent()
	smallest := smallestExtent(ext)
	if smallest == 0 {
		return nil, &ParseError{Name: m.Name, Reason: "bounding box has zero extent on every axis"}
	}

	// Uniform scale from the smallest extent: that axis ends up spanning
	// exactly one unit, the others may span more.
	s := 1 / smallest
	offset := m.Bounds.Center().Scale(-1)
	m.boundingBox = math.Scale(s, s, s).Mul(math.TranslateVec(offset))

	return m, nil
}

// smallestExtent returns the smallest positive extent, or 0 if none is.
// A flat mesh (one zero axis) is normalized by its thinnest real dimension.
func smallestExtent(ext [3]float32) float32 {
	var smallest float32
	for _, e := range ext {
		if e > 0 && (smallest == 0 || e < smallest) {
			smallest = e
		}
	}
	return smallest
}

// parseTriple reads up to three floats; missing or malformed tokens are NaN.
func parseTriple(tokens []string) [3]float32 {
	out := [3]float32{math32.NaN(), math32.NaN(), math32.NaN()}
	for i := 0; i < 3 && i < len(tokens); i++ {
		if f, err := strconv.ParseFloat(tokens[i], 32); err == nil {
			out[i] = float32(f)
		}
	}
	return out
}

// resolve turns a 1-based (or negative, relative) OBJ index into a 0-based
// index into a list of length n.
func resolve(n int, token string) (int, bool) {
	i, err := strconv.Atoi(token)
	if err != nil || i == 0 {
		return 0, false
	}
	if i < 0 {
		i = n + i
	} else {
		i--
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// at returns list[i], or NaNs when the reference did not resolve.
func at(list [][3]float32, i int, ok bool) [3]float32 {
	if !ok {
		return [3]float32{math32.NaN(), math32.NaN(), math32.NaN()}
	}
	return list[i]
}
