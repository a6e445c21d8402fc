package derive

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ComputeWorkHours returns the hours between two "HH:MM" or "HH:MM:SS" times,
// rounded to two decimals. Seconds are ignored. A missing or unparseable time
// yields 0. A check-out earlier than the check-in yields a negative value.
func ComputeWorkHours(checkIn, checkOut *string) float64 {
	if checkIn == nil || checkOut == nil {
		return 0
	}
	in, ok := minutesSinceMidnight(*checkIn)
	if !ok {
		return 0
	}
	out, ok := minutesSinceMidnight(*checkOut)
	if !ok {
		return 0
	}
	hours := decimal.NewFromInt(int64(out - in)).Div(decimal.NewFromInt(60)).Round(2)
	return hours.InexactFloat64()
}

// OvertimeHours is the part of workHours above a standard day, never negative.
func OvertimeHours(workHours, standardDay float64) float64 {
	if workHours <= standardDay {
		return 0
	}
	return round2(workHours - standardDay)
}

func minutesSinceMidnight(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func average2(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return decimal.NewFromFloat(sum).Div(decimal.NewFromInt(int64(n))).Round(2).InexactFloat64()
}

// percent returns round(part / whole * 100), or 0 when whole is 0.
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(part) * 100).Div(decimal.NewFromInt(int64(whole))).Round(0).IntPart())
}

func roundWhole(v float64) float64 {
	return decimal.NewFromFloat(v).Round(0).InexactFloat64()
}
