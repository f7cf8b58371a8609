// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/courtside/courtside/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableNameWidth calculates the maximum width for team names in table output
// based on terminal width and table configuration.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + W-L + Win % + Label with borders/padding
	baseWidth := 40

	// Home + Away + Neutral columns
	if cfg.Detail {
		baseWidth += 36
	}

	available := termWidth - baseWidth
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}
