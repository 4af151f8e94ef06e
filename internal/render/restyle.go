package render

import (
	"html/template"
	"strconv"

	"github.com/adventure705/shortstobenz3/internal/pipeline"
)

// Span classes applied to inline markup, per context.
const (
	calloutMarkClass   = "font-bold underline decoration-2"
	calloutStrongClass = "font-bold text-white"
	proseMarkClass     = "text-brand font-bold"
	itemStrongClass    = "text-gray-200 font-bold"
)

// calloutPalette holds the classes of one callout kind.
type calloutPalette struct {
	Box   string
	Icon  string
	Title string
	Text  string
}

var calloutPalettes = map[pipeline.CalloutKind]calloutPalette{
	pipeline.CalloutWarning: {
		Box:   "bg-[#7f1d1d] border-red-900",
		Icon:  "fa-exclamation-triangle",
		Title: "text-white",
		Text:  "text-red-100",
	},
	pipeline.CalloutInfo: {
		Box:   "bg-slate-800 border-slate-700",
		Icon:  "fa-info-circle",
		Title: "text-blue-400",
		Text:  "text-slate-300",
	},
}

func calloutStyle(kind pipeline.CalloutKind) calloutPalette {
	if p, ok := calloutPalettes[kind]; ok {
		return p
	}
	return calloutPalettes[pipeline.CalloutInfo]
}

func span(class string) string {
	return `<span class="` + class + `">${1}</span>`
}

// Section text is normalized lecture markup and is emitted as HTML.

func markup(s string) template.HTML {
	return template.HTML(s) // #nosec G203 -- normalized section text
}

func calloutText(s string) template.HTML {
	s = pipeline.ReplaceHighlight(s, span(calloutMarkClass))
	s = pipeline.ReplaceEmphasis(s, span(calloutStrongClass))
	return markup(s)
}

func proseText(s string) template.HTML {
	return markup(pipeline.ReplaceHighlight(s, span(proseMarkClass)))
}

func itemText(s string) template.HTML {
	return markup(pipeline.ReplaceEmphasis(s, span(itemStrongClass)))
}

func barStyle(width float64) template.CSS {
	return template.CSS("width: " + strconv.FormatFloat(width, 'f', -1, 64) + "%") // #nosec G203 -- numeric
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"markup":       markup,
		"callout":      calloutText,
		"prose":        proseText,
		"item":         itemText,
		"calloutStyle": calloutStyle,
		"barStyle":     barStyle,
		"inc":          func(i int) int { return i + 1 },
	}
}
