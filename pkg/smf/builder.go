package smf

import "strings"

// submeshBuilder accumulates classified lines into submeshes and the
// shared model-level vertex and texture lists. All state is local to
// one parse call.
type submeshBuilder struct {
	model      *Model
	current    *Submesh
	hintsTried bool // one hint scan per submesh, hit or miss
}

func newSubmeshBuilder(m *Model) *submeshBuilder {
	return &submeshBuilder{model: m}
}

// open finalizes any in-progress submesh and starts a new one.
func (b *submeshBuilder) open(name string) {
	b.flush()
	b.current = &Submesh{Name: name}
	b.hintsTried = false
}

// flush appends the in-progress submesh to the model, if any.
func (b *submeshBuilder) flush() {
	if b.current != nil {
		b.model.Submeshes = append(b.model.Submeshes, *b.current)
		b.current = nil
	}
}

// addVertex appends to the global vertex list and, when a submesh is
// open, to that submesh as well.
func (b *submeshBuilder) addVertex(v Vertex) {
	if b.current != nil {
		b.current.Vertices = append(b.current.Vertices, v)
	}
	b.model.Vertices = append(b.model.Vertices, v)
}

// addFace appends to the open submesh. Faces outside a submesh have no
// vertex list to index and are dropped.
func (b *submeshBuilder) addFace(f Face) {
	if b.current != nil {
		b.current.Faces = append(b.current.Faces, f)
	}
}

// addTexture records a texture reference. A reference attaches to the
// open submesh only while that submesh has no vertices yet; once
// vertex rows have started, later texture lines are ignored. With no
// submesh open the reference goes to the model registry only.
func (b *submeshBuilder) addTexture(name string) {
	if name == "" {
		return
	}
	if b.current != nil {
		if len(b.current.Vertices) > 0 {
			return
		}
		b.current.Textures = appendUnique(b.current.Textures, name)
		b.model.Textures = appendUnique(b.model.Textures, name)
		return
	}
	b.model.Textures = appendUnique(b.model.Textures, name)
}

// cleanTextureName strips quotes and whitespace from a texture line
// and, for comma-separated lines, keeps the last field. Case is
// preserved.
func cleanTextureName(line string) string {
	s := strings.TrimSpace(strings.ReplaceAll(line, `"`, ""))
	fields := strings.Split(s, ",")
	return strings.TrimSpace(fields[len(fields)-1])
}

// appendUnique appends s unless already present.
func appendUnique(list []string, s string) []string {
	for _, have := range list {
		if have == s {
			return list
		}
	}
	return append(list, s)
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(list []string) []string {
	if len(list) == 0 {
		return list
	}
	seen := make(map[string]bool, len(list))
	out := list[:0]
	for _, s := range list {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
