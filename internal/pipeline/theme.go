package pipeline

import "strings"

// ThemeKind names a card palette.
type ThemeKind string

// Theme kinds.
const (
	ThemeWarning ThemeKind = "warning"
	ThemeSuccess ThemeKind = "success"
	ThemeTip     ThemeKind = "tip"
	ThemeTool    ThemeKind = "tool"
	ThemeDefault ThemeKind = "default"
)

// Theme is the visual treatment of a card. Values are fixed and never mutated.
type Theme struct {
	Kind       ThemeKind
	Border     string
	Accent     string
	Icon       string
	Background string
	Gradient   [2]string
}

var (
	warningTheme = Theme{
		Kind:       ThemeWarning,
		Border:     "border-rose-600",
		Accent:     "text-rose-500",
		Icon:       "fa-ban",
		Background: "bg-rose-900/10",
		Gradient:   [2]string{"from-rose-500", "to-red-500"},
	}
	successTheme = Theme{
		Kind:       ThemeSuccess,
		Border:     "border-emerald-500",
		Accent:     "text-emerald-400",
		Icon:       "fa-bullseye",
		Background: "bg-emerald-900/10",
		Gradient:   [2]string{"from-emerald-400", "to-green-400"},
	}
	tipTheme = Theme{
		Kind:       ThemeTip,
		Border:     "border-blue-500",
		Accent:     "text-blue-400",
		Icon:       "fa-lightbulb",
		Background: "bg-blue-900/10",
		Gradient:   [2]string{"from-blue-400", "to-cyan-400"},
	}
	toolTheme = Theme{
		Kind:       ThemeTool,
		Border:     "border-indigo-500",
		Accent:     "text-indigo-400",
		Icon:       "fa-robot",
		Background: "bg-indigo-900/10",
		Gradient:   [2]string{"from-indigo-400", "to-purple-400"},
	}
	defaultTheme = Theme{
		Kind:       ThemeDefault,
		Border:     "border-gray-700",
		Accent:     "text-gray-300",
		Icon:       "fa-cube",
		Background: "bg-gray-800",
		Gradient:   [2]string{"from-gray-200", "to-gray-400"},
	}
)

// ThemeRule maps a keyword set to a theme. Keywords are lower case.
type ThemeRule struct {
	Keywords []string
	Theme    Theme
}

// themeRules are evaluated in order; the first match wins.
var themeRules = []ThemeRule{
	{Keywords: []string{"경고", "금지", "주의", "trash", "쓰레기", "안되는", "실패", "절대"}, Theme: warningTheme},
	{Keywords: []string{"목표", "성공", "달성", "생산성", "속도", "돈", "수익", "매출", "1억"}, Theme: successTheme},
	{Keywords: []string{"tip", "팁", "노하우", "해결책", "비결", "핵심", "전략"}, Theme: tipTheme},
	{Keywords: []string{"ai", "툴", "도구", "업무", "시스템", "자동화", "역할", "팀", "직원"}, Theme: toolTheme},
}

// ThemeRules returns a copy of the ordered classification table.
func ThemeRules() []ThemeRule {
	rules := make([]ThemeRule, len(themeRules))
	copy(rules, themeRules)
	return rules
}

// DefaultTheme returns the fallback theme.
func DefaultTheme() Theme {
	return defaultTheme
}

// ClassifyTheme returns the theme of the first rule whose keywords occur in title.
// Matching is case-insensitive and ignores inline markup.
func ClassifyTheme(title string) Theme {
	t := strings.ToLower(StripInlineMarkup(title))
	for _, rule := range themeRules {
		if containsAny(t, rule.Keywords) {
			return rule.Theme
		}
	}
	return defaultTheme
}

// containsAny reports whether s contains any of subs.
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
