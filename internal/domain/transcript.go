package domain

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	m "opshow.dev/pkg/opshow/internal/model"
)

// ExpectedTranscript is the exact output of the demonstration.
const ExpectedTranscript = `Sum: 8
Difference: 2
Product: 15
Quotient: 1
Remainder: 2
Is x equal to y?: 0
Is x not equal to y?: 1
Is x less than y?: 1
Is x greater than y?: 0
Is x less than or equal to y?: 1
Is x greater than or equal to y?: 0
Logical AND: 0
Logical OR: 1
Logical NOT: 0
Bitwise AND: 1
Bitwise OR: 7
Bitwise XOR: 6
Bitwise NOT: -6
Updated variable: 15
Value of PI: 3.141590
`

// Render formats lines as "Label: value", one per line.
func Render(lines []m.Line) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line.Label)
		b.WriteString(": ")
		b.WriteString(line.Value)
		b.WriteString("\n")
	}

	return b.String()
}

// Diff returns a unified diff from want to got, or "" when they match.
func Diff(got, want string) (string, error) {
	if got == want {
		return "", nil
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
}
