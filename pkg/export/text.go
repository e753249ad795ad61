package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/hadleyfc/pitchplanner/pkg/core/allocator"
)

// WriteTextSheet writes the allocation sheet as plain text, one line per
// allocation in display order (capacity class ascending, then start time).
func WriteTextSheet(path string, outcome *allocator.Outcome) error {
	var sb strings.Builder
	for _, line := range outcome.Lines() {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write allocation sheet: %w", err)
	}
	return nil
}
