package loggrep

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyPattern indicates a search with an empty pattern.
var ErrEmptyPattern = errors.New("loggrep: pattern must be non-empty")

// Match is one hit with its surrounding lines. HasPrev and HasNext are
// false at the log boundaries, where no context line exists. LineNo is
// the 1-based line number of the matching line.
type Match struct {
	Prev    string
	Line    string
	Next    string
	HasPrev bool
	HasNext bool
	LineNo  int
}

// File scans the log at path and returns every line containing pattern
// with one line of context. The whole file is held in memory.
func File(path, pattern string) ([]Match, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loggrep: open log: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loggrep: read log: %w", err)
	}

	var out []Match
	for i, line := range lines {
		if !strings.Contains(line, pattern) {
			continue
		}
		m := Match{Line: line, LineNo: i + 1}
		if i > 0 {
			m.Prev, m.HasPrev = lines[i-1], true
		}
		if i < len(lines)-1 {
			m.Next, m.HasNext = lines[i+1], true
		}
		out = append(out, m)
	}
	return out, nil
}

// Stream scans r line by line through a three-line window, so memory use
// is independent of log size. Matches are identical to File's. The scan
// stops with ctx's error when the context is cancelled.
func Stream(ctx context.Context, r io.Reader, pattern string) ([]Match, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		out       []Match
		prev, cur string
		hasPrev   bool
		hasCur    bool
		curNo     int
	)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next := sc.Text()
		if hasCur && strings.Contains(cur, pattern) {
			out = append(out, Match{
				Prev: prev, Line: cur, Next: next,
				HasPrev: hasPrev, HasNext: true,
				LineNo: curNo,
			})
		}
		if hasCur {
			prev, hasPrev = cur, true
		}
		cur, hasCur = next, true
		curNo++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loggrep: read log: %w", err)
	}

	// The final line has no successor.
	if hasCur && strings.Contains(cur, pattern) {
		out = append(out, Match{
			Prev: prev, Line: cur,
			HasPrev: hasPrev,
			LineNo:  curNo,
		})
	}
	return out, nil
}
