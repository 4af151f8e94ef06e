package pipeline

import "sort"

// MinBarWidth keeps very small values visible next to the maximum (percent).
const MinBarWidth = 10.0

// Chart is a relative bar comparison of monetary figures.
type Chart struct {
	Bars []ChartBar
}

// ChartBar is one bar of a Chart.
type ChartBar struct {
	Label       string
	Value       float64
	Width       float64 // percent of the widest bar, at least MinBarWidth
	Highlighted bool    // value equals the maximum
}

// BuildChart sorts points ascending and scales each bar relative to the maximum.
// Every point equal to the maximum is highlighted. Returns nil for empty input.
func BuildChart(points []MoneyPoint) *Chart {
	if len(points) == 0 {
		return nil
	}

	sorted := make([]MoneyPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value < sorted[j].Value
	})

	maxVal := sorted[len(sorted)-1].Value
	bars := make([]ChartBar, len(sorted))
	for i, p := range sorted {
		width := MinBarWidth
		if maxVal > 0 {
			width = max(MinBarWidth, p.Value/maxVal*100)
		}
		bars[i] = ChartBar{
			Label:       p.Label,
			Value:       p.Value,
			Width:       width,
			Highlighted: p.Value == maxVal,
		}
	}
	return &Chart{Bars: bars}
}

// ChartFor extracts money from text and builds a chart, or returns nil.
func ChartFor(text string) *Chart {
	return BuildChart(ExtractMoney(text))
}
