package tabular

import (
	"fmt"
	"strings"
)

const utf8BOM = "\uFEFF"

// normalizeHeaders trims header names, names blank headers after their
// position and suffixes duplicates with .1, .2, ... so every column is unique
func normalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	used := make(map[string]bool, len(raw))
	dupes := make(map[string]int)

	for i, name := range raw {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		candidate := name
		for used[candidate] {
			dupes[name]++
			candidate = fmt.Sprintf("%s.%d", name, dupes[name])
		}
		used[candidate] = true
		headers[i] = candidate
	}

	return headers
}

// trimTrailingEmpty drops empty cells at the end of a spreadsheet row
func trimTrailingEmpty(cells []string) []string {
	end := len(cells)
	for end > 0 && cells[end-1] == "" {
		end--
	}
	return cells[:end]
}
