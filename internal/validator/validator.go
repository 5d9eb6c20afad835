// Package validator checks the structural shape of puzzle documents,
// separately from parsing: it reports every problem it finds instead of
// stopping at the first, so a whole scraped batch can be triaged at once.
package validator

import (
	"context"
	"fmt"

	"svw.info/kakuro/internal/domain"
)

type FormatValidator struct{}

func New() *FormatValidator { return &FormatValidator{} }

// ValidateFormat verifies that doc matches the persisted puzzle shape:
// size is [rows, columns] with positive entries, every cell record carries
// coordinates in bounds and is tagged as wall, clue, or pre-filled value,
// clue sums are positive, values lie in 1-9, and no position is declared
// twice. It never fails; the error return satisfies ports.Validator.
func (v *FormatValidator) ValidateFormat(ctx context.Context, doc *domain.PuzzleDocument) (bool, []domain.FormatIssue, error) {
	var issues []domain.FormatIssue
	docIssue := func(reason string) {
		issues = append(issues, domain.FormatIssue{Index: -1, Reason: reason})
	}
	cellIssue := func(i int, format string, args ...any) {
		issues = append(issues, domain.FormatIssue{Index: i, Reason: fmt.Sprintf(format, args...)})
	}

	if doc == nil {
		docIssue("no document")
		return false, issues, nil
	}
	rows, cols := 0, 0
	if len(doc.Size) != 2 {
		docIssue("size must contain exactly 2 elements [rows, cols]")
	} else {
		rows, cols = doc.Size[0], doc.Size[1]
		if rows < 1 || cols < 1 {
			docIssue(fmt.Sprintf("size %dx%d is not positive", rows, cols))
		}
	}

	seen := make(map[domain.Coord]bool, len(doc.Cells))
	for i, cell := range doc.Cells {
		if rows > 0 && cols > 0 && (cell.X < 0 || cell.X >= rows || cell.Y < 0 || cell.Y >= cols) {
			cellIssue(i, "cell %d coordinates (%d,%d) out of bounds", i, cell.X, cell.Y)
		}
		at := domain.Coord{X: cell.X, Y: cell.Y}
		if seen[at] {
			cellIssue(i, "cell %d duplicates position (%d,%d)", i, cell.X, cell.Y)
		}
		seen[at] = true

		isClue := cell.Right != nil || cell.Down != nil
		if !cell.Wall && !isClue && cell.Value == nil {
			cellIssue(i, "cell %d declares neither wall, sum, nor value", i)
		}
		if cell.Right != nil && *cell.Right < 1 {
			cellIssue(i, "cell %d right sum must be positive", i)
		}
		if cell.Down != nil && *cell.Down < 1 {
			cellIssue(i, "cell %d down sum must be positive", i)
		}
		if cell.Value != nil {
			if *cell.Value < 1 || *cell.Value > 9 {
				cellIssue(i, "cell %d value must be between 1 and 9", i)
			}
			if cell.Wall || isClue {
				cellIssue(i, "cell %d cannot combine a value with wall or sums", i)
			}
		}
	}
	return len(issues) == 0, issues, nil
}
