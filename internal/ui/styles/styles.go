package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors and styles are assigned by ApplyTheme.
var (
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color

	TitleBar  lipgloss.Style
	FooterBar lipgloss.Style

	Help          lipgloss.Style
	HelpKey       lipgloss.Style
	MutedText     lipgloss.Style
	SecondaryText lipgloss.Style
	ErrorStyle    lipgloss.Style
	SuccessStyle  lipgloss.Style

	InputLabel        lipgloss.Style
	InputField        lipgloss.Style
	InputFieldFocused lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	ListItemDimmed   lipgloss.Style

	ReaderProgress lipgloss.Style
	Dialog         lipgloss.Style
	DialogTitle    lipgloss.Style
	BookTitle      lipgloss.Style

	BookmarkIndicator lipgloss.Style
	NoteIndicator     lipgloss.Style
	BadgeQuran        lipgloss.Style
	BadgeThoughts     lipgloss.Style
)

const ellipsis = "…"

// TruncateText shortens s to at most width terminal cells, marking the cut
// with an ellipsis. Arabic text keeps its logical order.
func TruncateText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > width-1 {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + ellipsis
}

// AlignRight pads s on the left so it ends at the right edge of width,
// which is where right-to-left lines start.
func AlignRight(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, s)
}

// HelpItems joins key/description pairs into a footer line.
func HelpItems(pairs ...string) string {
	items := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		items = append(items, HelpKey.Render(pairs[i])+Help.Render(" "+pairs[i+1]))
	}
	return strings.Join(items, "  ")
}

// ProgressBar draws a bar of width cells filled to progress, which is
// clamped to [0, 1].
func ProgressBar(width int, progress float64) string {
	if width < 3 {
		width = 3
	}
	progress = max(0, min(progress, 1))

	const (
		empty    = "░"
		filled   = "█"
		partials = "▏▎▍▌▋▊▉" // 1/8 to 7/8 filled
	)

	filledWidth := progress * float64(width)
	fullBlocks := int(filledWidth)
	remainder := filledWidth - float64(fullBlocks)

	var bar strings.Builder
	bar.WriteString(strings.Repeat(filled, min(fullBlocks, width)))

	if fullBlocks < width && remainder > 0 {
		if partialIndex := min(int(remainder*8), 7); partialIndex > 0 {
			bar.WriteRune([]rune(partials)[partialIndex-1])
			fullBlocks++
		}
	}
	if fullBlocks < width {
		bar.WriteString(strings.Repeat(empty, width-fullBlocks))
	}
	return bar.String()
}
