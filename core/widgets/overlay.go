package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup centers popup on a width×height canvas made from base.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := splitToLines(popup, 0)
	x := max(0, (width-maxLineWidth(lines))/2)
	y := max(0, (height-len(lines))/2)
	return RenderPopupAt(base, popup, x, y, width, height)
}

// RenderPopupAt draws popup over base with its top-left corner at x, y.
// Rows of base outside the popup are kept; the popup is clipped to the
// canvas.
func RenderPopupAt(base, popup string, x, y, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	x = max(0, min(x, width))
	canvas := splitToLines(base, height)
	for i := range canvas {
		canvas[i] = padRightANSI(canvas[i], width)
	}
	overlay := splitToLines(popup, 0)
	overlayWidth := maxLineWidth(overlay)
	for i, line := range overlay {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		target := canvas[row]
		left := padRightANSI(ansi.Truncate(target, x, ""), x)
		mid := padRightANSI(line, min(overlayWidth, max(0, width-x)))
		right := dropColumns(target, x+ansi.StringWidth(mid))
		canvas[row] = left + mid + right
	}
	return strings.Join(canvas, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// RenderPrompt boxes a single-line input so it can be laid over the picker.
func RenderPrompt(input string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPeach).
		Padding(0, 1).
		Width(PickerWidth - 2).
		Render(TrimToWidth(input, PickerWidth-4))
}
