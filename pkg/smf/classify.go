package smf

import (
	"strings"
	"unicode"
)

// headerToken is the reserved token that starts a model block.
const headerToken = "C3DModel"

// textureMarker is the texture-file extension, matched case-insensitively.
const textureMarker = ".TIF"

// LineClass identifies the structural role of one input line.
type LineClass int

const (
	ClassHeader       LineClass = iota // model-start token
	ClassVersion                       // bare integer before the version is fixed
	ClassSubmeshStart                  // all-alphabetic submesh name
	ClassVertexMarker                  // legacy v-prefixed marker, no data
	ClassTextureRef                    // line containing a texture filename
	ClassVertexRow                     // 8 comma fields
	ClassFaceRow                       // 3 comma fields
	ClassUnknown                       // anything else, skipped
)

// String returns a human-readable class name.
func (c LineClass) String() string {
	switch c {
	case ClassHeader:
		return "Header"
	case ClassVersion:
		return "Version"
	case ClassSubmeshStart:
		return "SubmeshStart"
	case ClassVertexMarker:
		return "VertexMarker"
	case ClassTextureRef:
		return "TextureRef"
	case ClassVertexRow:
		return "VertexRow"
	case ClassFaceRow:
		return "FaceRow"
	case ClassUnknown:
		return "Unknown"
	default:
		return "Invalid"
	}
}

// classifyLine tags a trimmed, non-empty line with its structural role
// and returns the comma fields for the CSV classes. The precedence is
// fixed: header, version, submesh start, vertex marker, texture
// reference, then CSV field count. Reordering corrupts parsing: a
// texture line containing commas must not be read as geometry, and a
// digit-only line must not be read as a submesh name.
func classifyLine(line string, versionSet bool) (LineClass, []string) {
	if strings.HasPrefix(line, headerToken) {
		return ClassHeader, nil
	}
	if !versionSet && isAllDigits(line) {
		return ClassVersion, nil
	}
	if isAllLetters(line) {
		return ClassSubmeshStart, nil
	}
	if line[0] == 'v' || line[0] == 'V' {
		return ClassVertexMarker, nil
	}
	if strings.Contains(strings.ToUpper(line), textureMarker) {
		return ClassTextureRef, nil
	}

	fields := strings.Split(line, ",")
	switch len(fields) {
	case 8:
		return ClassVertexRow, fields
	case 3:
		return ClassFaceRow, fields
	}
	return ClassUnknown, fields
}

// isAllDigits reports whether the line consists only of digits.
func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// isAllLetters reports whether the line consists only of letters.
func isAllLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}
