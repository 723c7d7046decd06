package smf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse reads an SMF document from r and returns the parsed model plus
// a diagnostics list for every line that was skipped. Only a failure
// to read the underlying input is returned as an error; format-level
// irregularities are recovered line by line.
func Parse(r io.Reader) (*Model, []Diagnostic, error) {
	var (
		lines   []string
		lineNos []int
		diags   []Diagnostic
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for scanner.Scan() {
		n++
		raw := scanner.Text()
		if !utf8.ValidString(raw) {
			diags = append(diags, Diagnostic{Line: n, Kind: DiagDecodeWarning, Detail: "line is not valid UTF-8"})
			continue
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		lineNos = append(lineNos, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading input: %w", err)
	}

	m, diags := assemble(lines, lineNos, diags)
	return m, diags, nil
}

// ParseFile parses an SMF file from disk.
func ParseFile(path string) (*Model, []Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening SMF file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// ParseLines parses an already split line sequence. Lines are trimmed
// and blank lines dropped, matching Parse.
func ParseLines(raw []string) (*Model, []Diagnostic) {
	var (
		lines   []string
		lineNos []int
		diags   []Diagnostic
	)
	for i, l := range raw {
		if !utf8.ValidString(l) {
			diags = append(diags, Diagnostic{Line: i + 1, Kind: DiagDecodeWarning, Detail: "line is not valid UTF-8"})
			continue
		}
		line := strings.TrimSpace(l)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		lineNos = append(lineNos, i+1)
	}
	return assemble(lines, lineNos, diags)
}

// assemble drives the classifier and submesh builder over the ordered
// non-blank line sequence and produces the finished model.
func assemble(lines []string, lineNos []int, diags []Diagnostic) (*Model, []Diagnostic) {
	m := &Model{
		Header:  make(map[string]string),
		Version: -1,
	}
	b := newSubmeshBuilder(m)

	for i, line := range lines {
		class, fields := classifyLine(line, m.Version >= 0)

		switch class {
		case ClassHeader:
			m.Header["type"] = headerToken

		case ClassVersion:
			v, err := strconv.Atoi(line)
			if err != nil {
				diags = append(diags, Diagnostic{Line: lineNos[i], Kind: DiagMalformedField, Detail: "version does not fit an int"})
				continue
			}
			m.Version = v

		case ClassSubmeshStart:
			b.open(line)

		case ClassVertexMarker:
			// Marker only, nothing to extract.

		case ClassTextureRef:
			b.addTexture(cleanTextureName(line))

		case ClassVertexRow, ClassFaceRow, ClassUnknown:
			// The hint row drifts relative to the submesh start, so the
			// scan is anchored to the first comma row instead. One
			// attempt per submesh, hit or miss.
			if b.current != nil && !b.hintsTried {
				b.current.Hint = resolveCountHints(lines, i)
				b.hintsTried = true
			}

			switch class {
			case ClassVertexRow:
				v, err := parseVertexRow(fields)
				if err != nil {
					diags = append(diags, Diagnostic{Line: lineNos[i], Kind: DiagMalformedField, Detail: fmt.Sprintf("vertex row: %v", err)})
					continue
				}
				b.addVertex(v)

			case ClassFaceRow:
				f, err := parseFaceRow(fields)
				if err != nil {
					diags = append(diags, Diagnostic{Line: lineNos[i], Kind: DiagMalformedField, Detail: fmt.Sprintf("face row: %v", err)})
					continue
				}
				b.addFace(f)

			case ClassUnknown:
				diags = append(diags, Diagnostic{Line: lineNos[i], Kind: DiagUnknownLine, Detail: fmt.Sprintf("%d comma fields", len(fields))})
			}
		}
	}

	b.flush()

	// Final dedup pass, first-seen order preserved.
	m.Textures = dedupe(m.Textures)
	for i := range m.Submeshes {
		m.Submeshes[i].Textures = dedupe(m.Submeshes[i].Textures)
	}

	return m, diags
}

// parseVertexRow converts 8 comma fields into a Vertex. Any field
// failing to parse rejects the whole row.
func parseVertexRow(fields []string) (Vertex, error) {
	var v Vertex
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Vertex{}, fmt.Errorf("field %d: %q is not a number", i, strings.TrimSpace(f))
		}
		v[i] = x
	}
	return v, nil
}

// parseFaceRow converts 3 comma fields into a Face. Any field failing
// to parse rejects the whole row.
func parseFaceRow(fields []string) (Face, error) {
	var f Face
	for i, s := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return Face{}, fmt.Errorf("field %d: %q is not an index", i, strings.TrimSpace(s))
		}
		f[i] = n
	}
	return f, nil
}
