package styles

import "github.com/charmbracelet/lipgloss"

// Theme represents a color scheme for the application
type Theme struct {
	Name        string
	Description string

	// Core colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Muted   lipgloss.Color

	// UI element colors
	Border        lipgloss.Color
	Selection     lipgloss.Color
	SelectionText lipgloss.Color
	Bookmark      lipgloss.Color
	Note          lipgloss.Color
	BadgeQuran    lipgloss.Color
	BadgeThoughts lipgloss.Color
	BadgeText     lipgloss.Color
}

// Built-in themes
var (
	// DarkTheme is the default dark theme
	DarkTheme = Theme{
		Name:          "dark",
		Description:   "Dark theme (default)",
		Primary:       lipgloss.Color("#047857"),
		Secondary:     lipgloss.Color("#D4A373"),
		Background:    lipgloss.Color("#111827"),
		Foreground:    lipgloss.Color("#F9FAFB"),
		Success:       lipgloss.Color("#10B981"),
		Warning:       lipgloss.Color("#F59E0B"),
		Error:         lipgloss.Color("#EF4444"),
		Muted:         lipgloss.Color("#6B7280"),
		Border:        lipgloss.Color("#374151"),
		Selection:     lipgloss.Color("#047857"),
		SelectionText: lipgloss.Color("#F9FAFB"),
		Bookmark:      lipgloss.Color("#F59E0B"),
		Note:          lipgloss.Color("#38BDF8"),
		BadgeQuran:    lipgloss.Color("#10B981"),
		BadgeThoughts: lipgloss.Color("#D4A373"),
		BadgeText:     lipgloss.Color("#111827"),
	}

	// LightTheme is a paper-like scheme for bright terminals
	LightTheme = Theme{
		Name:          "light",
		Description:   "Light theme",
		Primary:       lipgloss.Color("#065F46"),
		Secondary:     lipgloss.Color("#92400E"),
		Background:    lipgloss.Color("#FFFBEB"),
		Foreground:    lipgloss.Color("#1F2937"),
		Success:       lipgloss.Color("#059669"),
		Warning:       lipgloss.Color("#D97706"),
		Error:         lipgloss.Color("#DC2626"),
		Muted:         lipgloss.Color("#9CA3AF"),
		Border:        lipgloss.Color("#E5E7EB"),
		Selection:     lipgloss.Color("#065F46"),
		SelectionText: lipgloss.Color("#FFFFFF"),
		Bookmark:      lipgloss.Color("#B45309"),
		Note:          lipgloss.Color("#0369A1"),
		BadgeQuran:    lipgloss.Color("#059669"),
		BadgeThoughts: lipgloss.Color("#92400E"),
		BadgeText:     lipgloss.Color("#FFFFFF"),
	}

	// BuiltinThemes is a list of all available built-in themes
	BuiltinThemes = []Theme{
		DarkTheme,
		LightTheme,
	}

	// currentTheme holds the active theme
	currentTheme = DarkTheme
)

// GetTheme returns a theme by name, or the default theme if not found
func GetTheme(name string) Theme {
	for _, t := range BuiltinThemes {
		if t.Name == name {
			return t
		}
	}
	return DarkTheme
}

// GetThemeNames returns a list of all available theme names
func GetThemeNames() []string {
	names := make([]string, len(BuiltinThemes))
	for i, t := range BuiltinThemes {
		names[i] = t.Name
	}
	return names
}

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetCurrentTheme sets the active theme by name
func SetCurrentTheme(name string) {
	currentTheme = GetTheme(name)
	ApplyTheme(currentTheme)
}

// ApplyTheme updates all global styles to use the given theme's colors
func ApplyTheme(theme Theme) {
	Primary = theme.Primary
	Secondary = theme.Secondary
	Success = theme.Success
	Warning = theme.Warning
	Error = theme.Error
	Muted = theme.Muted
	Background = theme.Background
	Foreground = theme.Foreground
	Border = theme.Border

	TitleBar = lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Background(theme.Primary).
		Padding(0, 1).
		Bold(true)

	FooterBar = lipgloss.NewStyle().
		Foreground(theme.Muted).
		Padding(0, 1)

	Help = lipgloss.NewStyle().
		Foreground(theme.Muted)

	HelpKey = lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true)

	MutedText = lipgloss.NewStyle().
		Foreground(theme.Muted)

	SecondaryText = lipgloss.NewStyle().
		Foreground(theme.Secondary)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true).
		Padding(0, 1)

	InputLabel = lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Bold(true)

	InputField = lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	InputFieldFocused = InputField.
		BorderForeground(theme.Primary)

	ListItem = lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Padding(0, 2)

	ListItemSelected = lipgloss.NewStyle().
		Foreground(theme.SelectionText).
		Background(theme.Selection).
		Padding(0, 2).
		Bold(true)

	ListItemDimmed = lipgloss.NewStyle().
		Foreground(theme.Muted).
		Padding(0, 2)

	ReaderProgress = lipgloss.NewStyle().
		Foreground(theme.Secondary)

	Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 2)

	DialogTitle = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		MarginBottom(1)

	BookTitle = lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Bold(true)

	BookmarkIndicator = lipgloss.NewStyle().
		Foreground(theme.Bookmark).
		Bold(true)

	NoteIndicator = lipgloss.NewStyle().
		Foreground(theme.Note).
		Bold(true)

	BadgeQuran = lipgloss.NewStyle().
		Foreground(theme.BadgeText).
		Background(theme.BadgeQuran).
		Padding(0, 1).
		Bold(true)

	BadgeThoughts = lipgloss.NewStyle().
		Foreground(theme.BadgeText).
		Background(theme.BadgeThoughts).
		Padding(0, 1).
		Bold(true)
}

// init applies the default theme on package load
func init() {
	ApplyTheme(DarkTheme)
}
