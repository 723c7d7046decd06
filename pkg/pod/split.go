// Package pod carves individual SMF model files out of Terminal
// Reality POD archive streams. Each model span begins at a C3DModel
// line and runs until the next one; spans are written verbatim, byte
// for byte.
package pod

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// headerToken marks the start of one SMF span inside the stream.
const headerToken = "C3DModel"

// renameMarker is the texture suffix used to recover a model name for
// the output file.
const renameMarker = "_bump.TIF"

// Result describes one Split run.
type Result struct {
	Files    []string // final output paths, in extraction order
	Count    int      // number of models written
	Warnings []string // non-fatal rename and decode issues
}

// Split extracts every SMF span from the POD stream at podPath into
// its own file under outputDir. Outputs start as smf_NNNN.smf; when a
// *_bump.TIF texture line is seen inside a span, the current output is
// renamed to the texture's first underscore segment. The rename is a
// file-staging convenience only: a failed rename becomes a warning on
// the Result and extraction continues under the old name.
func Split(podPath, outputDir string) (*Result, error) {
	in, err := os.Open(podPath)
	if err != nil {
		return nil, fmt.Errorf("opening POD file: %w", err)
	}
	defer in.Close()
	return SplitStream(in, outputDir)
}

// SplitStream extracts SMF spans from an already opened POD stream.
// See Split for the extraction and renaming behavior.
func SplitStream(in io.Reader, outputDir string) (*Result, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	res := &Result{}

	var out *os.File
	var outPath string
	var err error

	closeCurrent := func() error {
		if out == nil {
			return nil
		}
		err := out.Close()
		out = nil
		if err != nil {
			return fmt.Errorf("closing %s: %w", outPath, err)
		}
		res.Files = append(res.Files, outPath)
		res.Count++
		return nil
	}

	r := bufio.NewReader(in)
	for {
		raw, readErr := r.ReadBytes('\n')
		if len(raw) > 0 {
			stripped := bytes.TrimSpace(raw)

			// Start of a new model span.
			if string(stripped) == headerToken {
				if err := closeCurrent(); err != nil {
					return nil, err
				}
				outPath = filepath.Join(outputDir, fmt.Sprintf("smf_%04d.smf", res.Count))
				out, err = os.Create(outPath)
				if err != nil {
					return nil, fmt.Errorf("creating %s: %w", outPath, err)
				}
			}

			if out != nil {
				if _, err := out.Write(raw); err != nil {
					out.Close()
					return nil, fmt.Errorf("writing %s: %w", outPath, err)
				}

				if bytes.Contains(stripped, []byte(renameMarker)) {
					if name := modelName(stripped, res); name != "" {
						newPath := filepath.Join(outputDir, name+".smf")
						if newPath != outPath {
							out, outPath, err = moveOpen(out, outPath, newPath, res)
							if err != nil {
								return nil, err
							}
						}
					}
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			if out != nil {
				out.Close()
			}
			return nil, fmt.Errorf("reading POD stream: %w", readErr)
		}
	}

	if err := closeCurrent(); err != nil {
		return nil, err
	}

	return res, nil
}

// modelName recovers a model name from a texture line: decoded as
// UTF-8, quotes stripped, first underscore segment kept. Returns ""
// (with a warning) when the line cannot be decoded.
func modelName(stripped []byte, res *Result) string {
	if !utf8.Valid(stripped) {
		res.Warnings = append(res.Warnings, "undecodable texture line, keeping generated name")
		return ""
	}
	text := strings.Trim(string(stripped), `"`)
	return strings.SplitN(text, "_", 2)[0]
}

// moveOpen renames the open output file and reopens it for appending.
// Rename failure is a warning and the old name is kept; only I/O
// failure on the reopen is fatal, since the span cannot be continued.
func moveOpen(out *os.File, outPath, newPath string, res *Result) (*os.File, string, error) {
	if err := out.Close(); err != nil {
		return nil, "", fmt.Errorf("closing %s: %w", outPath, err)
	}

	if err := os.Rename(outPath, newPath); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("renaming %s: %v", filepath.Base(outPath), err))
		newPath = outPath
	}

	reopened, err := os.OpenFile(newPath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, "", fmt.Errorf("reopening %s: %w", newPath, err)
	}
	return reopened, newPath, nil
}
