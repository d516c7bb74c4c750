// Package formats provides the level file formats for pipes.
package formats

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

// Level is a parsed level ready for use.
type Level struct {
	ID    string
	Name  string
	Props core.Properties
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".map", ".yaml", ".yml"}
}

// ParseText parses the plain map format:
//
//	rows
//	cols
//	delay
//	<rows lines of cols glyphs>
//	[one line of pipe glyphs for the start of the queue]
//
// The map is validated; nothing is returned on error.
func ParseText(data []byte) (Level, error) {
	lines := splitLines(string(data))
	if len(lines) < 3 {
		return Level{}, core.MapError{Code: core.CodeBadHeader, Message: "expected rows, cols and delay lines"}
	}

	rows, err := parseHeader(lines[0], "rows")
	if err != nil {
		return Level{}, err
	}
	cols, err := parseHeader(lines[1], "cols")
	if err != nil {
		return Level{}, err
	}
	delay, err := parseHeader(lines[2], "delay")
	if err != nil {
		return Level{}, err
	}
	if rows < core.MinSize || cols < core.MinSize {
		return Level{}, core.MapError{Code: core.CodeBadDims, Message: "Map size must be at least 2x2!"}
	}

	body := lines[3:]
	if len(body) < rows {
		return Level{}, core.MapError{
			Code:    core.CodeNotRectangular,
			Message: fmt.Sprintf("expected %d grid lines, got %d", rows, len(body)),
		}
	}

	pipes := ""
	switch extra := body[rows:]; len(extra) {
	case 0:
	case 1:
		pipes = extra[0]
	default:
		return Level{}, core.MapError{Code: core.CodeNotRectangular, Message: "unexpected lines after the grid"}
	}

	props, err := BuildProperties(body[:rows], cols, delay, pipes)
	if err != nil {
		return Level{}, err
	}
	return Level{Props: props}, nil
}

// BuildProperties turns grid lines and an optional pipe line into validated
// properties.
func BuildProperties(grid []string, cols, delay int, pipes string) (core.Properties, error) {
	rows := len(grid)
	tiles := make([][]rune, rows)
	for r, line := range grid {
		tiles[r] = []rune(line)
		if len(tiles[r]) != cols {
			return core.Properties{}, core.MapError{
				Code:    core.CodeNotRectangular,
				Message: fmt.Sprintf("row %d has %d tiles, expected %d", r, len(tiles[r]), cols),
			}
		}
	}

	p := core.Properties{Rows: rows, Cols: cols, Delay: delay, Cells: make([]core.Cell, 0, rows*cols)}
	for r, runes := range tiles {
		for c, ch := range runes {
			cell, err := core.CellFromRune(ch, core.C(r, c), rows, cols)
			if err != nil {
				return core.Properties{}, err
			}
			p.Cells = append(p.Cells, cell)
		}
	}

	for _, ch := range pipes {
		s, ok := core.ParseShape(ch)
		if !ok {
			return core.Properties{}, core.MapError{
				Code:    core.CodeUnknownGlyph,
				Message: fmt.Sprintf("unknown pipe %q in queue", ch),
			}
		}
		p.Pipes = append(p.Pipes, s)
	}

	if err := p.Validate(); err != nil {
		return core.Properties{}, err
	}
	return p, nil
}

// WriteText writes p in the plain map format. Fill state is never written.
func WriteText(w io.Writer, p core.Properties) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n%d\n", p.Rows, p.Cols, p.Delay)
	for _, line := range GridLines(p) {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	if len(p.Pipes) > 0 {
		bw.WriteString(PipeLine(p.Pipes))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// GridLines returns the serialized glyphs of p, one string per row.
func GridLines(p core.Properties) []string {
	lines := make([]string, p.Rows)
	for r := range p.Rows {
		var sb strings.Builder
		for c := range p.Cols {
			sb.WriteRune(p.At(r, c).SerializedRune())
		}
		lines[r] = sb.String()
	}
	return lines
}

// PipeLine returns the glyphs of shapes as one string.
func PipeLine(shapes []core.Shape) string {
	var sb strings.Builder
	for _, s := range shapes {
		sb.WriteRune(s.Rune())
	}
	return sb.String()
}

func parseHeader(line, what string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, core.MapError{Code: core.CodeBadHeader, Message: fmt.Sprintf("invalid %s %q", what, line)}
	}
	return n, nil
}

// splitLines splits on newlines, drops carriage returns and trailing blank lines.
func splitLines(s string) []string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
