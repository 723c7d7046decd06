package smf

import (
	"strconv"
	"strings"
)

// Count hint scan window, in lines relative to the first comma row of
// a submesh. The hint row's position drifts across format revisions,
// so the scan looks both behind and ahead of the current line.
const (
	hintScanBack  = 6
	hintScanAhead = 3
)

// resolveCountHints scans the window around lines[idx] for the first
// row splitting into at least four comma fields whose first and third
// fields both parse as integers, and treats them as the vertex and
// face counts. Returns nil when no candidate is in the window.
//
// The scan tolerates false positives: a stray 4+-field row can be
// mistaken for a hint, which is acceptable because hints are
// display/diagnostic only.
func resolveCountHints(lines []string, idx int) *CountHint {
	lo := idx - hintScanBack
	if lo < 0 {
		lo = 0
	}
	hi := idx + hintScanAhead
	if hi > len(lines) {
		hi = len(lines)
	}

	for j := lo; j < hi; j++ {
		fields := strings.Split(lines[j], ",")
		if len(fields) < 4 {
			continue
		}
		vc, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			continue
		}
		fc, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			continue
		}
		return &CountHint{VertexCount: vc, FaceCount: fc}
	}

	return nil
}
