package pipeline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Card layout thresholds, in characters.
const (
	maxTipHeaderLength  = 30
	maxMainHeaderLength = 40
)

var rolePattern = regexp.MustCompile(`(?i)^(역할|Role)\s*[:：]\s*(.*)`)

var (
	tipTriggers        = []string{"Tip", "전략", "활용"}
	mainHeaderKeywords = []string{"왜", "특징", "장점"}
)

// Card is a themed block inside a section.
type Card struct {
	Title       string
	Theme       Theme
	Subtitle    string
	MainHeading string
	MainItems   []string
	TipBox      *TipBox
	Chart       *Chart
}

// TipBox is the side panel of a card.
type TipBox struct {
	Title string
	Items []string
}

// cardMode selects the list that receives body lines.
type cardMode int

const (
	modeMain cardMode = iota
	modeBox
)

// cardState is the accumulator owned by a single ParseCard call.
type cardState struct {
	mode        cardMode
	subtitle    string
	hasSubtitle bool
	mainHeading string
	mainItems   []string
	box         *TipBox
}

// cardRule consumes a line when it matches. Rules run in order; a line not
// consumed by any rule is appended as body text.
type cardRule struct {
	name  string
	apply func(s *cardState, line string) bool
}

var cardRules = []cardRule{
	{name: "subtitle", apply: applySubtitle},
	{name: "tip-box", apply: applyTipBox},
	{name: "main-heading", apply: applyMainHeading},
}

// applySubtitle captures the first "역할: ..." / "Role: ..." line.
func applySubtitle(s *cardState, line string) bool {
	if s.hasSubtitle {
		return false
	}
	m := rolePattern.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	s.subtitle = m[2]
	s.hasSubtitle = true
	return true
}

// applyTipBox opens a tip box on short "Tip"/"전략"/"활용" header lines.
func applyTipBox(s *cardState, line string) bool {
	if !containsAny(line, tipTriggers) {
		return false
	}
	if utf8.RuneCountInString(line) >= maxTipHeaderLength {
		return false
	}
	if strings.Contains(line, ":") && !strings.HasSuffix(line, ":") {
		return false
	}
	s.mode = modeBox
	s.box = &TipBox{Title: strings.ReplaceAll(line, ":", "")}
	return true
}

// applyMainHeading sets the main list heading on short "왜/특징/장점" questions or labels.
func applyMainHeading(s *cardState, line string) bool {
	if !containsAny(line, mainHeaderKeywords) {
		return false
	}
	if !strings.ContainsAny(line, "?:") {
		return false
	}
	if utf8.RuneCountInString(line) >= maxMainHeaderLength {
		return false
	}
	s.mainHeading = strings.ReplaceAll(line, ":", "")
	s.mode = modeMain
	return true
}

// appendBody adds a line to the list selected by the current mode.
func (s *cardState) appendBody(line string) {
	if s.mode == modeBox && s.box != nil {
		s.box.Items = append(s.box.Items, line)
		return
	}
	s.mainItems = append(s.mainItems, line)
}

// ParseCard builds a card from its title and raw item lines.
func ParseCard(title string, items []string, n *Normalizer) Card {
	s := &cardState{mode: modeMain}

	for _, item := range items {
		line := n.Normalize(item)
		if line == "" {
			continue
		}

		consumed := false
		for _, rule := range cardRules {
			if rule.apply(s, line) {
				consumed = true
				break
			}
		}
		if !consumed {
			s.appendBody(line)
		}
	}

	return Card{
		Title:       title,
		Theme:       ClassifyTheme(title),
		Subtitle:    s.subtitle,
		MainHeading: s.mainHeading,
		MainItems:   s.mainItems,
		TipBox:      s.box,
	}
}

// Text returns all body lines of the card joined by newlines.
func (c Card) Text() string {
	lines := append([]string(nil), c.MainItems...)
	if c.TipBox != nil {
		lines = append(lines, c.TipBox.Items...)
	}
	return strings.Join(lines, "\n")
}
