package web

import (
	"strconv"
	"strings"

	"github.com/e-XpertSolutions/go-linalg/linalg"
)

// ParseMatrix parses free-form text like "1 2; 3 4" into rows of float64.
// Rows are separated by newlines or semicolons, values by whitespace or
// commas. Every row must have the same number of values.
func ParseMatrix(text string) ([][]float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, linalg.Errorf("", linalg.ErrInvalidInput, "matrix input is empty")
	}

	var rows [][]float64
	colCount := -1
	rowNum := 0
	for _, rowStr := range strings.Split(strings.ReplaceAll(text, "\n", ";"), ";") {
		rowStr = strings.TrimSpace(rowStr)
		if rowStr == "" {
			continue
		}
		rowNum++
		tokens := strings.Fields(strings.ReplaceAll(rowStr, ",", " "))
		values := make([]float64, 0, len(tokens))
		for _, tok := range tokens {
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, linalg.Errorf("", linalg.ErrInvalidInput,
					"row %d: '%s' is not a valid number", rowNum, tok)
			}
			values = append(values, f)
		}
		if colCount == -1 {
			colCount = len(values)
		} else if len(values) != colCount {
			return nil, linalg.Errorf("", linalg.ErrInvalidInput,
				"row %d has %d values but row 1 has %d", rowNum, len(values), colCount)
		}
		rows = append(rows, values)
	}
	return rows, nil
}

// ParseVector parses text like "1 2 3" into a slice of float64. Semicolons,
// newlines and commas are all treated as value separators.
func ParseVector(text string) ([]float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, linalg.Errorf("", linalg.ErrInvalidInput, "vector input is empty")
	}

	r := strings.NewReplacer(";", " ", "\n", " ", ",", " ")
	tokens := strings.Fields(r.Replace(text))
	values := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, linalg.Errorf("", linalg.ErrInvalidInput,
				"'%s' is not a valid number", tok)
		}
		values = append(values, f)
	}
	return values, nil
}
