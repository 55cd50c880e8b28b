// Package reporting renders solver output in the supported formats.
package reporting

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/zorak1103/hanoi/internal/config"
	apperrors "github.com/zorak1103/hanoi/internal/errors"
	"github.com/zorak1103/hanoi/internal/hanoi"
)

// MaxDocumentDisks is the largest disk count the json and yaml formats accept.
// Those formats hold every move in memory before encoding.
const MaxDocumentDisks = 20

// CheckDisks rejects disk counts that format cannot render.
func CheckDisks(format string, n int) error {
	if (format == config.FormatJSON || format == config.FormatYAML) && n > MaxDocumentDisks {
		return &apperrors.InvalidArgumentError{
			Argument: "disks",
			Value:    strconv.Itoa(n),
			Err:      fmt.Errorf("%w: %s output supports at most %d disks", hanoi.ErrInvalidDiskCount, format, MaxDocumentDisks),
		}
	}
	return nil
}

// SolveFunc produces moves for a puzzle. Both hanoi.Solve and
// hanoi.SolveIterative satisfy it.
type SolveFunc func(n int, pegs hanoi.Pegs, emit hanoi.EmitFunc) error

// Puzzle describes one run to render.
type Puzzle struct {
	Title string
	Disks int
	Pegs  hanoi.Pegs
}

// Solution is the document written by the structured formats.
type Solution struct {
	Title     string       `json:"title,omitempty" yaml:"title,omitempty"`
	Disks     int          `json:"disks" yaml:"disks"`
	Pegs      hanoi.Pegs   `json:"pegs" yaml:"pegs"`
	MoveCount int          `json:"move_count" yaml:"move_count"`
	Moves     []hanoi.Move `json:"moves" yaml:"moves"`
}

// Write solves p with solve and renders the result to w in format.
// Text and markdown stream each move as it is produced; json and yaml
// collect the moves into a single document first.
// It returns the number of moves written.
func Write(w io.Writer, format string, p Puzzle, solve SolveFunc) (int, error) {
	switch format {
	case config.FormatText:
		return writeText(w, p, solve)
	case config.FormatMarkdown:
		return writeMarkdown(w, p, solve)
	case config.FormatJSON, config.FormatYAML:
		return writeDocument(w, format, p, solve)
	default:
		return 0, fmt.Errorf("unsupported output format %q", format)
	}
}

func writeText(w io.Writer, p Puzzle, solve SolveFunc) (int, error) {
	if p.Title != "" {
		if _, err := fmt.Fprintf(w, "--- %s ---\n", p.Title); err != nil {
			return 0, fmt.Errorf("failed to write header: %w", err)
		}
	}

	count := 0
	err := solve(p.Disks, p.Pegs, func(m hanoi.Move) error {
		if _, err := fmt.Fprintln(w, m.String()); err != nil {
			return fmt.Errorf("failed to write move: %w", err)
		}
		count++
		return nil
	})
	return count, err
}

func writeMarkdown(w io.Writer, p Puzzle, solve SolveFunc) (int, error) {
	title := p.Title
	if title == "" {
		title = fmt.Sprintf("Towers of Hanoi (%d disks)", p.Disks)
	}

	header := fmt.Sprintf("# %s\n\n", title) +
		fmt.Sprintf("**Disks:** %d  \n", p.Disks) +
		fmt.Sprintf("**Pegs:** `%s` → `%s` (via `%s`)\n\n", p.Pegs.Source, p.Pegs.Destination, p.Pegs.Auxiliary) +
		"| # | Disk | From | To |\n" +
		"|---|------|------|----|\n"
	if _, err := io.WriteString(w, header); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	count := 0
	err := solve(p.Disks, p.Pegs, func(m hanoi.Move) error {
		count++
		if _, err := fmt.Fprintf(w, "| %d | %d | %s | %s |\n", count, m.Disk, m.From, m.To); err != nil {
			return fmt.Errorf("failed to write move: %w", err)
		}
		return nil
	})
	if err != nil {
		return count, err
	}

	if _, err := fmt.Fprintf(w, "\n**Total moves:** %d\n", count); err != nil {
		return count, fmt.Errorf("failed to write footer: %w", err)
	}
	return count, nil
}

func writeDocument(w io.Writer, format string, p Puzzle, solve SolveFunc) (int, error) {
	if err := CheckDisks(format, p.Disks); err != nil {
		return 0, err
	}

	doc := Solution{
		Title: p.Title,
		Disks: p.Disks,
		Pegs:  p.Pegs,
		Moves: []hanoi.Move{},
	}

	err := solve(p.Disks, p.Pegs, func(m hanoi.Move) error {
		doc.Moves = append(doc.Moves, m)
		return nil
	})
	if err != nil {
		return 0, err
	}
	doc.MoveCount = len(doc.Moves)

	if format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return 0, fmt.Errorf("failed to encode json: %w", err)
		}
		return doc.MoveCount, nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return 0, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("failed to flush yaml: %w", err)
	}
	return doc.MoveCount, nil
}
