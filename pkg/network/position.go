package network

import (
	"strconv"
	"strings"

	"github.com/citenet/backend/pkg/table"
)

// Resolved author positions. Position 1 is the first author; middle and
// corresponding roles map onto fixed sentinels.
const (
	firstAuthorPosition  = 1
	middleAuthorPosition = 2
	corrAuthorPosition   = -1
)

// ResolvePosition maps a raw author_position cell onto a normalized integer
// position. The cell may hold an integer, an integer as text, or one of a
// small role vocabulary. The second return is false when the cell is null
// or unrecognizable; such rows are excluded downstream. Resolution is
// total and never fails.
func ResolvePosition(cell table.Value) (int, bool) {
	if cell.IsNull() {
		return 0, false
	}

	text := strings.TrimSpace(cell.Text())
	if position, err := strconv.Atoi(text); err == nil {
		return position, true
	}

	switch strings.ToLower(text) {
	case "middle", "mid":
		return middleAuthorPosition, true
	case "last", "corresponding", "corr":
		return corrAuthorPosition, true
	}

	return 0, false
}
