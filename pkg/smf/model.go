// Package smf provides a parser for Terminal Reality SMF model files
// used in games like 4x4 Evolution 2. The format is line-oriented text
// with no formal grammar; structure is inferred from line shape, so the
// parser is deliberately tolerant of the revision drift seen across
// real files.
package smf

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vertex is one 8-field SMF vertex row. Fields 0-2 are the position
// and fields 6-7 are the UV pair. Fields 3-5 are carried through
// untouched; their meaning is not documented by the format.
type Vertex [8]float64

// Position returns the vertex position (fields 0-2).
func (v Vertex) Position() mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// UV returns the texture coordinate pair (fields 6-7).
func (v Vertex) UV() (u, w float64) {
	return v[6], v[7]
}

// Face holds three zero-based indices into the owning submesh's vertex
// list. Indices are stored verbatim and are not bounds-checked.
type Face [3]int

// CountHint is the optional vertex/face count pair recovered from a
// header-ish row near a submesh start. Hints are advisory only and are
// never used to bound or validate parsed geometry.
type CountHint struct {
	VertexCount int
	FaceCount   int
}

// Submesh is a named, independently indexed group of vertices and
// faces within one model.
type Submesh struct {
	Name     string
	Vertices []Vertex
	Faces    []Face
	Textures []string   // first-seen order, deduplicated
	Hint     *CountHint // nil when no hint row was found
}

// Bounds returns the axis-aligned bounds of the submesh's vertex
// positions. Returns zero vectors when the submesh has no vertices.
func (s *Submesh) Bounds() (min, max mgl64.Vec3) {
	return vertexBounds(s.Vertices)
}

// Model is the parsed SMF document. One Model is built per parse call
// and is not modified afterwards.
type Model struct {
	Header    map[string]string
	Version   int      // -1 when the file carries no version line
	Vertices  []Vertex // global vertex list across all submeshes
	Submeshes []Submesh
	Textures  []string // first-seen order, deduplicated
}

// HasVersion reports whether a version line was seen.
func (m *Model) HasVersion() bool {
	return m.Version >= 0
}

// TotalVertexCount returns the number of vertices in the global list.
// Rows accepted outside any submesh are counted too.
func (m *Model) TotalVertexCount() int {
	return len(m.Vertices)
}

// TotalFaceCount returns the number of faces across all submeshes.
func (m *Model) TotalFaceCount() int {
	total := 0
	for i := range m.Submeshes {
		total += len(m.Submeshes[i].Faces)
	}
	return total
}

// SubmeshByName returns the first submesh with the given name, or nil
// if not found. Submesh names are not guaranteed unique.
func (m *Model) SubmeshByName(name string) *Submesh {
	for i := range m.Submeshes {
		if m.Submeshes[i].Name == name {
			return &m.Submeshes[i]
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounds of every vertex position in
// the model. Returns zero vectors when the model has no vertices.
func (m *Model) Bounds() (min, max mgl64.Vec3) {
	return vertexBounds(m.Vertices)
}

func vertexBounds(vertices []Vertex) (min, max mgl64.Vec3) {
	if len(vertices) == 0 {
		return mgl64.Vec3{}, mgl64.Vec3{}
	}

	min = vertices[0].Position()
	max = min

	for _, v := range vertices[1:] {
		p := v.Position()
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}

	return min, max
}
