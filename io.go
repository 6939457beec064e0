package barneshut

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadSimulation parses a whitespace-separated initial-conditions file
// at path: the first non-blank line is a single float R establishing
// the simulation extent [-R, +R] on both axes, and every line after
// that holds exactly five floats "rx ry vx vy m" describing one
// body's initial position, velocity, and mass. A line with a
// different token count is a fatal *ParseError.
func LoadSimulation(path string) (*Simulation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("barneshut: opening %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0

	var extent float64
	haveExtent := false
	var bodies []Body

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !haveExtent {
			r, err := strconv.ParseFloat(line, 64)
			if err != nil {
				return nil, &ParseError{Path: path, Line: lineNo, Text: line, Err: err}
			}
			extent = r
			haveExtent = true
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, &ParseError{
				Path: path,
				Line: lineNo,
				Text: line,
				Err:  fmt.Errorf("expected 5 fields (rx ry vx vy m), got %d", len(fields)),
			}
		}

		values := make([]float64, 5)
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, &ParseError{Path: path, Line: lineNo, Text: line, Err: err}
			}
			values[i] = v
		}

		bodies = append(bodies, Body{
			Position: Vec2{X: values[0], Y: values[1]},
			Velocity: Vec2{X: values[2], Y: values[3]},
			Mass:     values[4],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("barneshut: reading %s: %w", path, err)
	}
	if !haveExtent {
		return nil, &ParseError{Path: path, Line: lineNo, Text: "", Err: fmt.Errorf("empty file: missing extent line")}
	}

	return &Simulation{Bodies: bodies, Extent: extent}, nil
}
