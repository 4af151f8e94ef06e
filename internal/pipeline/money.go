package pipeline

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// moneyPattern matches a number with an optional Korean unit run and currency marker,
// e.g. "300만 원", "1억", "5천만원", "1,500원".
var moneyPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*([만억천]+)?\s*원?`)

// MoneyDedupTolerance is the absolute distance under which two values are
// treated as the same figure.
const MoneyDedupTolerance = 10

// MinChartPoints is the number of distinct values needed for a comparison chart.
const MinChartPoints = 2

// Unit multipliers in priority order. Only the first unit present applies;
// combined units such as 천만 are not compounded.
var moneyUnits = []struct {
	unit       string
	multiplier float64
}{
	{"억", 100_000_000},
	{"만", 10_000},
	{"천", 1_000},
}

// MoneyPoint is one monetary figure found in text.
type MoneyPoint struct {
	Label string  // original numeral + unit + "원"
	Value float64 // normalized magnitude in won
}

// ExtractMoney scans text for monetary expressions and returns the distinct
// figures in order of appearance. Returns nil when fewer than MinChartPoints
// distinct values are found.
func ExtractMoney(text string) []MoneyPoint {
	if text == "" {
		return nil
	}

	var points []MoneyPoint
	for _, m := range moneyPattern.FindAllStringSubmatch(text, -1) {
		numStr, unitStr := m[1], m[2]

		val, err := strconv.ParseFloat(strings.ReplaceAll(numStr, ",", ""), 64)
		if err != nil {
			continue
		}
		val *= unitMultiplier(unitStr)

		if isNearDuplicate(points, val) {
			continue
		}
		points = append(points, MoneyPoint{
			Label: numStr + unitStr + "원",
			Value: val,
		})
	}

	if len(points) < MinChartPoints {
		return nil
	}
	return points
}

// unitMultiplier returns the multiplier of the highest-priority unit in units.
func unitMultiplier(units string) float64 {
	for _, u := range moneyUnits {
		if strings.Contains(units, u.unit) {
			return u.multiplier
		}
	}
	return 1
}

func isNearDuplicate(points []MoneyPoint, val float64) bool {
	for _, p := range points {
		if math.Abs(p.Value-val) < MoneyDedupTolerance {
			return true
		}
	}
	return false
}
