package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mstgen/internal/config"
	"github.com/katalvlaran/mstgen/internal/metrics"
	"github.com/katalvlaran/mstgen/prim_kruskal"
	"github.com/katalvlaran/mstgen/session"
)

var (
	errMalformedLine = errors.New("mstgen: malformed input line")
	errUnknownFormat = errors.New("mstgen: unknown output format")
)

// runner feeds "x y" lines into a session and writes every rebuilt edge list.
type runner struct {
	session *session.Session
	out     io.Writer
	format  string
	strict  bool
	log     *logrus.Entry
	metrics *metrics.Metrics
}

type edgeJSON struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

type snapshotJSON struct {
	Step   int        `json:"step"`
	Weight float64    `json:"weight"`
	Edges  []edgeJSON `json:"edges"`
}

func (r *runner) run(in io.Reader) error {
	if r.format != config.FORMAT_TEXT && r.format != config.FORMAT_JSON {
		return fmt.Errorf("%w: %q", errUnknownFormat, r.format)
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		x, y, ok, err := parseLine(scanner.Text())
		if err != nil {
			r.metrics.InputRejected()
			if r.strict {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			r.log.WithFields(logrus.Fields{"line": lineNo, "error": err}).Warn("Skipping malformed input line")
			continue
		}
		if !ok {
			continue
		}

		_, edges, err := r.session.Add(x, y)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := r.emit(r.session.Len(), r.session.Weight(), edges); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// parseLine reads one "x y" or "x,y" line. Blank lines and lines starting with
// '#' report ok == false without an error.
func parseLine(line string) (x, y float64, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return 0, 0, false, nil
	}

	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) != 2 {
		return 0, 0, false, fmt.Errorf("%w: want 2 coordinates, got %d", errMalformedLine, len(fields))
	}

	if x, err = parseCoordinate(fields[0]); err != nil {
		return 0, 0, false, err
	}
	if y, err = parseCoordinate(fields[1]); err != nil {
		return 0, 0, false, err
	}

	return x, y, true, nil
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errMalformedLine, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", errMalformedLine, s)
	}

	return v, nil
}

func (r *runner) emit(step int, weight float64, edges []prim_kruskal.Edge) error {
	if r.format == config.FORMAT_JSON {
		snap := snapshotJSON{Step: step, Weight: weight, Edges: make([]edgeJSON, len(edges))}
		for i, e := range edges {
			snap.Edges[i] = edgeJSON{From: e.From, To: e.To, Weight: e.Weight}
		}
		return json.NewEncoder(r.out).Encode(snap)
	}

	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.String()
	}
	_, err := fmt.Fprintf(r.out, "step=%d weight=%.3f edges=%s\n", step, weight, strings.Join(parts, " "))

	return err
}
