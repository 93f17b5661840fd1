package payslip

import (
	"regexp"
	"sort"
	"strings"
)

// minBlockLen is the empirical minimum size of a real employee section;
// shorter spans are page furniture, not records.
const minBlockLen = 50

var (
	// blockBoundaryRe marks the start of an employee section: an
	// "Empr./Contr.: <number>" marker (standard layout) or a
	// "Matrícula: <number>" marker (vacation layout).
	blockBoundaryRe = regexp.MustCompile(`(?i)(?:Empr|Contr)\.?\s*:\s*\d+|Matrícula:\s*\d+`)

	departmentRe = regexp.MustCompile(`Departamento:\s*(.+)`)
)

// block is one employee's text span within a document, annotated with its
// starting offset and the department header that precedes it.
type block struct {
	text       string
	start      int
	department *string
}

// segment splits a document's text into candidate employee blocks. The
// boundary marker is retained as part of the following block
// (split-with-lookahead semantics). Blocks below the minimum length or
// missing both identity markers are rejected, not emitted.
func segment(text string) []block {
	departments := departmentOffsets(text)

	bounds := blockBoundaryRe.FindAllStringIndex(text, -1)
	if len(bounds) == 0 {
		return nil
	}

	// The span before the first marker is kept as a candidate too; the
	// structural filters below reject it unless it really is a record.
	starts := make([]int, 0, len(bounds)+1)
	if bounds[0][0] > 0 {
		starts = append(starts, 0)
	}
	for _, b := range bounds {
		starts = append(starts, b[0])
	}

	var blocks []block
	for i, start := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		span := text[start:end]
		if len(span) < minBlockLen {
			continue
		}
		if !strings.Contains(span, "CPF:") && !strings.Contains(span, "Matrícula:") {
			continue
		}
		blocks = append(blocks, block{
			text:       span,
			start:      start,
			department: nearestDepartment(departments, start),
		})
	}
	return blocks
}

// departmentOccurrence records one "Departamento: <value>" header and its
// character offset in the document.
type departmentOccurrence struct {
	offset int
	value  string
}

func departmentOffsets(text string) []departmentOccurrence {
	matches := departmentRe.FindAllStringSubmatchIndex(text, -1)
	occurrences := make([]departmentOccurrence, 0, len(matches))
	for _, m := range matches {
		occurrences = append(occurrences, departmentOccurrence{
			offset: m[0],
			value:  strings.TrimSpace(text[m[2]:m[3]]),
		})
	}
	sort.Slice(occurrences, func(i, j int) bool { return occurrences[i].offset < occurrences[j].offset })
	return occurrences
}

// nearestDepartment selects the department header with the greatest offset
// still before the block's start; nil if none precedes it.
func nearestDepartment(occurrences []departmentOccurrence, blockStart int) *string {
	for i := len(occurrences) - 1; i >= 0; i-- {
		if occurrences[i].offset < blockStart {
			value := occurrences[i].value
			return &value
		}
	}
	return nil
}
