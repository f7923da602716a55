package theme

// DefaultName is the palette selected when no configuration names one.
const DefaultName = "tokyonight"

// Tokyo Night (moon variant for dark, day variant for light).
var tokyoNight = Palette{
	Primary:       Adaptive("#82aaff", "#2e7de9"),
	Secondary:     Adaptive("#c099ff", "#9854f1"),
	Accent:        Adaptive("#ff966c", "#b15c00"),
	Success:       Adaptive("#c3e88d", "#587539"),
	Text:          Adaptive("#c8d3f5", "#3760bf"),
	TextMuted:     Adaptive("#636da6", "#848cb5"),
	Background:    Adaptive("#222436", "#e1e2e7"),
	Surface:       Adaptive("#2f334d", "#c8c9ce"),
	Selection:     Adaptive("#1e2030", "#d5d6db"),
	BorderNormal:  Adaptive("#3b4261", "#a8aecb"),
	BorderFocused: Adaptive("#82aaff", "#2e7de9"),
	BorderDim:     Adaptive("#292e42", "#c8c9ce"),
}

// Dracula, https://draculatheme.com/contribute
var dracula = Palette{
	Primary:       Adaptive("#bd93f9", "#7e57c2"),
	Secondary:     Adaptive("#8be9fd", "#0097a7"),
	Accent:        Adaptive("#f1fa8c", "#f9a825"),
	Success:       Adaptive("#50fa7b", "#388e3c"),
	Text:          Adaptive("#f8f8f2", "#212121"),
	TextMuted:     Adaptive("#6272a4", "#757575"),
	Background:    Adaptive("#282a36", "#ffffff"),
	Surface:       Adaptive("#44475a", "#e0e0e0"),
	Selection:     Adaptive("#1e1f29", "#bdbdbd"),
	BorderNormal:  Adaptive("#6272a4", "#bdbdbd"),
	BorderFocused: Adaptive("#bd93f9", "#7e57c2"),
	BorderDim:     Adaptive("#44475a", "#e0e0e0"),
}

// Nord, https://www.nordtheme.com/docs/colors-and-palettes
var nord = Palette{
	Primary:       Adaptive("#88C0D0", "#5E81AC"),
	Secondary:     Adaptive("#81A1C1", "#81A1C1"),
	Accent:        Adaptive("#8FBCBB", "#8FBCBB"),
	Success:       Adaptive("#A3BE8C", "#A3BE8C"),
	Text:          Adaptive("#ECEFF4", "#2E3440"),
	TextMuted:     Adaptive("#8B95A7", "#3B4252"),
	Background:    Adaptive("#2E3440", "#ECEFF4"),
	Surface:       Adaptive("#3B4252", "#E5E9F0"),
	Selection:     Adaptive("#434C5E", "#D8DEE9"),
	BorderNormal:  Adaptive("#434C5E", "#4C566A"),
	BorderFocused: Adaptive("#4C566A", "#434C5E"),
	BorderDim:     Adaptive("#434C5E", "#4C566A"),
}

var gruvbox = Palette{
	Primary:       Adaptive("#83a598", "#076678"),
	Secondary:     Adaptive("#d3869b", "#8f3f71"),
	Accent:        Adaptive("#fabd2f", "#b57614"),
	Success:       Adaptive("#b8bb26", "#79740e"),
	Text:          Adaptive("#ebdbb2", "#3c3836"),
	TextMuted:     Adaptive("#a89984", "#7c6f64"),
	Background:    Adaptive("#282828", "#fbf1c7"),
	Surface:       Adaptive("#504945", "#ebdbb2"),
	Selection:     Adaptive("#1d2021", "#d5c4a1"),
	BorderNormal:  Adaptive("#504945", "#bdae93"),
	BorderFocused: Adaptive("#83a598", "#076678"),
	BorderDim:     Adaptive("#3c3836", "#d5c4a1"),
}

// Catppuccin Mocha (dark) / Latte (light).
var catppuccin = Palette{
	Primary:       Adaptive("#89b4fa", "#1e66f5"),
	Secondary:     Adaptive("#cba6f7", "#8839ef"),
	Accent:        Adaptive("#fab387", "#fe640b"),
	Success:       Adaptive("#a6e3a1", "#40a02b"),
	Text:          Adaptive("#cdd6f4", "#4c4f69"),
	TextMuted:     Adaptive("#6c7086", "#9ca0b0"),
	Background:    Adaptive("#1e1e2e", "#eff1f5"),
	Surface:       Adaptive("#313244", "#e6e9ef"),
	Selection:     Adaptive("#181825", "#dce0e8"),
	BorderNormal:  Adaptive("#6c7086", "#9ca0b0"),
	BorderFocused: Adaptive("#89b4fa", "#1e66f5"),
	BorderDim:     Adaptive("#45475a", "#ccd0da"),
}

func init() {
	// Registered first so it is the default.
	Register(DefaultName, tokyoNight)
	Register("catppuccin", catppuccin)
	Register("dracula", dracula)
	Register("gruvbox", gruvbox)
	Register("nord", nord)
}
