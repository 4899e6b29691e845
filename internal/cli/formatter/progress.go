package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders an achievement bar like [████░░░░]  45%.
// rate is a percentage; the bar clamps to 0..100 while the label keeps the
// real value.
func RenderProgress(rate float64, width int) string {
	return fmt.Sprintf("[%s] %s", RenderCompactBar(rate, width), RateStyle(rate).Render(fmt.Sprintf("%3.0f%%", rate)))
}

// RenderCompactBar renders the bar alone, without brackets or label.
func RenderCompactBar(rate float64, width int) string {
	ratio := min(max(rate/100, 0), 1)
	if width < 2 {
		width = 2
	}
	filled := min(int(ratio*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return RateStyle(rate).Render(bar)
}
