// Package tui implements the board surface and the companion
// dashboard: bubbletea programs that render the job list and feed
// discrete (jobID, targetStatus) drop events into the transition
// policy and the store.
package tui

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Theme holds all visual styling for the board and dashboard TUIs.
type Theme struct {
	Colors ThemeColors `yaml:"colors"`
	Icons  ThemeIcons  `yaml:"icons"`
	Title  ThemeTitle  `yaml:"title"`
}

// ThemeColors defines the color palette.
type ThemeColors struct {
	Primary   string `yaml:"primary"`   // accent (title, selected borders)
	Success   string `yaml:"success"`   // due dates comfortably in the future
	Warning   string `yaml:"warning"`   // due today / due soon
	Danger    string `yaml:"danger"`    // overdue
	Muted     string `yaml:"muted"`     // secondary text, placeholders
	Text      string `yaml:"text"`      // normal text
	Border    string `yaml:"border"`    // column and card borders
	Highlight string `yaml:"highlight"` // selected card background
}

// ThemeIcons defines the decorations used in the TUIs.
type ThemeIcons struct {
	Column  string `yaml:"column"`  // column header prefix
	Select  string `yaml:"select"`  // selected card marker
	Due     string `yaml:"due"`     // due badge bullet
	Sidebar string `yaml:"sidebar"` // sidebar section marker
}

// ThemeTitle defines the title bar.
type ThemeTitle struct {
	Text string `yaml:"text"`
	Icon string `yaml:"icon"`
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() *Theme {
	return &Theme{
		Colors: ThemeColors{
			Primary:   "#00A933",
			Success:   "#04B575",
			Warning:   "#FFBD2E",
			Danger:    "#FF5F56",
			Muted:     "#626262",
			Text:      "#CCCCCC",
			Border:    "#3C3C3C",
			Highlight: "#0B3D1E",
		},
		Icons: ThemeIcons{
			Column:  "▸",
			Select:  "▶",
			Due:     "●",
			Sidebar: "☰",
		},
		Title: ThemeTitle{
			Text: "JobTracker",
			Icon: "🗂",
		},
	}
}

// CompiledTheme holds pre-built lipgloss styles from a Theme.
type CompiledTheme struct {
	TitleStyle lipgloss.Style

	ColumnStyle       lipgloss.Style
	ColumnHeaderStyle lipgloss.Style
	ColumnCountStyle  lipgloss.Style
	EmptyColumnStyle  lipgloss.Style

	CardStyle         lipgloss.Style
	SelectedCardStyle lipgloss.Style
	SoonCardStyle     lipgloss.Style
	RoleStyle         lipgloss.Style
	CompanyStyle      lipgloss.Style
	MetaStyle         lipgloss.Style

	DueOKStyle      lipgloss.Style
	DueTodayStyle   lipgloss.Style
	DueOverdueStyle lipgloss.Style

	SidebarStyle       lipgloss.Style
	SidebarActiveStyle lipgloss.Style
	BadgeWarnStyle     lipgloss.Style
	BadgeDangerStyle   lipgloss.Style

	KPIStyle       lipgloss.Style
	KPIWarnStyle   lipgloss.Style
	KPIDangerStyle lipgloss.Style
	KPITitleStyle  lipgloss.Style
	KPIValueStyle  lipgloss.Style

	FormLabelStyle lipgloss.Style
	StatusBarStyle lipgloss.Style
	FlashStyle     lipgloss.Style

	Icons ThemeIcons
	Title ThemeTitle
}

// Compile pre-builds the lipgloss styles for t.
func (t *Theme) Compile() *CompiledTheme {
	primary := lipgloss.Color(t.Colors.Primary)
	success := lipgloss.Color(t.Colors.Success)
	warning := lipgloss.Color(t.Colors.Warning)
	danger := lipgloss.Color(t.Colors.Danger)
	muted := lipgloss.Color(t.Colors.Muted)
	text := lipgloss.Color(t.Colors.Text)
	border := lipgloss.Color(t.Colors.Border)
	highlight := lipgloss.Color(t.Colors.Highlight)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	kpi := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 2)

	return &CompiledTheme{
		TitleStyle: lipgloss.NewStyle().Background(primary).Foreground(lipgloss.Color("#FFFFFF")).Bold(true).Padding(0, 1),

		ColumnStyle:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(border).Padding(0, 1),
		ColumnHeaderStyle: lipgloss.NewStyle().Foreground(text).Bold(true),
		ColumnCountStyle:  lipgloss.NewStyle().Foreground(muted),
		EmptyColumnStyle:  lipgloss.NewStyle().Foreground(muted).Italic(true),

		CardStyle:         card,
		SelectedCardStyle: card.BorderForeground(primary).Background(highlight),
		SoonCardStyle:     card.BorderForeground(warning),
		RoleStyle:         lipgloss.NewStyle().Foreground(text).Bold(true),
		CompanyStyle:      lipgloss.NewStyle().Foreground(text),
		MetaStyle:         lipgloss.NewStyle().Foreground(muted),

		DueOKStyle:      lipgloss.NewStyle().Foreground(success),
		DueTodayStyle:   lipgloss.NewStyle().Foreground(warning).Bold(true),
		DueOverdueStyle: lipgloss.NewStyle().Foreground(danger).Bold(true),

		SidebarStyle:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(border).Padding(0, 1),
		SidebarActiveStyle: lipgloss.NewStyle().Foreground(primary).Bold(true),
		BadgeWarnStyle:     lipgloss.NewStyle().Foreground(warning).Bold(true),
		BadgeDangerStyle:   lipgloss.NewStyle().Foreground(danger).Bold(true),

		KPIStyle:       kpi,
		KPIWarnStyle:   kpi.BorderForeground(warning),
		KPIDangerStyle: kpi.BorderForeground(danger),
		KPITitleStyle:  lipgloss.NewStyle().Foreground(muted),
		KPIValueStyle:  lipgloss.NewStyle().Foreground(text).Bold(true),

		FormLabelStyle: lipgloss.NewStyle().Foreground(muted),
		StatusBarStyle: lipgloss.NewStyle().Foreground(muted),
		FlashStyle:     lipgloss.NewStyle().Foreground(primary),

		Icons: t.Icons,
		Title: t.Title,
	}
}

// activeTheme is the compiled theme used by the TUIs. Set via SetTheme
// before launching a program.
var activeTheme *CompiledTheme

func init() {
	activeTheme = DefaultTheme().Compile()
}

// SetTheme sets the active theme.
func SetTheme(theme *Theme) {
	if theme != nil {
		activeTheme = theme.Compile()
	}
}

// themeConfig is the slice of .jtrack.yaml this package cares about.
type themeConfig struct {
	Theme *Theme `yaml:"theme"`
}

// LoadThemeFromConfig loads the theme from .jtrack.yaml if present,
// falling back to the default theme on any trouble.
func LoadThemeFromConfig() *Theme {
	path := findConfigPath()
	if path == "" {
		return DefaultTheme()
	}
	// #nosec G304 -- findConfigPath only returns local or user-config paths
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTheme()
	}
	var cfg themeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultTheme()
	}
	if cfg.Theme == nil {
		return DefaultTheme()
	}
	return mergeWithDefaults(cfg.Theme)
}

// InitThemeFromConfig loads and activates the configured theme. Call
// early in main, before running a program.
func InitThemeFromConfig() {
	SetTheme(LoadThemeFromConfig())
}

func findConfigPath() string {
	if _, err := os.Stat(".jtrack.yaml"); err == nil {
		return ".jtrack.yaml"
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(configDir, "jtrack", ".jtrack.yaml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// mergeWithDefaults fills in missing values from the default theme.
func mergeWithDefaults(theme *Theme) *Theme {
	def := DefaultTheme()

	if theme.Colors.Primary == "" {
		theme.Colors.Primary = def.Colors.Primary
	}
	if theme.Colors.Success == "" {
		theme.Colors.Success = def.Colors.Success
	}
	if theme.Colors.Warning == "" {
		theme.Colors.Warning = def.Colors.Warning
	}
	if theme.Colors.Danger == "" {
		theme.Colors.Danger = def.Colors.Danger
	}
	if theme.Colors.Muted == "" {
		theme.Colors.Muted = def.Colors.Muted
	}
	if theme.Colors.Text == "" {
		theme.Colors.Text = def.Colors.Text
	}
	if theme.Colors.Border == "" {
		theme.Colors.Border = def.Colors.Border
	}
	if theme.Colors.Highlight == "" {
		theme.Colors.Highlight = def.Colors.Highlight
	}

	if theme.Icons.Column == "" {
		theme.Icons.Column = def.Icons.Column
	}
	if theme.Icons.Select == "" {
		theme.Icons.Select = def.Icons.Select
	}
	if theme.Icons.Due == "" {
		theme.Icons.Due = def.Icons.Due
	}
	if theme.Icons.Sidebar == "" {
		theme.Icons.Sidebar = def.Icons.Sidebar
	}

	if theme.Title.Text == "" {
		theme.Title.Text = def.Title.Text
	}
	if theme.Title.Icon == "" {
		theme.Title.Icon = def.Title.Icon
	}

	return theme
}
