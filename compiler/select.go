package compiler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/syssam/dogen/compiler/load"
)

// ErrInvalidSelection indicates that no table matches the user's choice.
var ErrInvalidSelection = errors.New("dogen: invalid selection")

// SelectionError records the rejected choice.
type SelectionError struct {
	Input string
	Count int
}

// Error implements the error interface.
func (e *SelectionError) Error() string {
	return fmt.Sprintf("dogen: invalid selection %q (choose 1-%d)", e.Input, e.Count)
}

// Is reports whether the target matches the sentinel error for SelectionError.
func (e *SelectionError) Is(target error) bool {
	return target == ErrInvalidSelection
}

// A Selector picks the table to generate from. Tables is never empty.
type Selector interface {
	Select(tables []*load.Table) (*load.Table, error)
}

// FirstSelector always picks the first table.
type FirstSelector struct{}

// Select implements Selector.
func (FirstSelector) Select(tables []*load.Table) (*load.Table, error) {
	return tables[0], nil
}

// NameSelector picks the table with the given name.
type NameSelector string

// Select implements Selector.
func (n NameSelector) Select(tables []*load.Table) (*load.Table, error) {
	for _, t := range tables {
		if t.Name == string(n) {
			return t, nil
		}
	}
	return nil, &SelectionError{Input: string(n), Count: len(tables)}
}

// PromptSelector lists the tables on Out and, when there is more than
// one, reads a 1-based choice from In.
type PromptSelector struct {
	In  io.Reader
	Out io.Writer
}

// Select implements Selector.
func (p *PromptSelector) Select(tables []*load.Table) (*load.Table, error) {
	out := p.Out
	if out == nil {
		out = io.Discard
	}
	fmt.Fprintln(out, "Available tables:")
	for i, t := range tables {
		fmt.Fprintf(out, "  [%d] %s\n", i+1, t.Name)
	}
	if len(tables) == 1 {
		return tables[0], nil
	}
	fmt.Fprintf(out, "Select a table [1-%d]: ", len(tables))
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	input := strings.TrimSpace(line)
	n, ok := parseChoice(input, len(tables))
	if !ok {
		return nil, &SelectionError{Input: input, Count: len(tables)}
	}
	return tables[n-1], nil
}

// parseChoice accepts ASCII digits only, in the range [1, count].
func parseChoice(s string, count int) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > count {
		return 0, false
	}
	return n, true
}
