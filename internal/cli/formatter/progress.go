package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderScoreBar renders a 0-100 score as a bar like [████░░░░]  45.00.
// Red below 50, yellow below 75, green otherwise.
func RenderScoreBar(score float64, width int) string {
	pct := min(max(score/100, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case score < 50:
		style = StyleRed
	case score < 75:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %6.2f", style.Render(bar), score)
}
