package utils

import "math"

// classMultipliers maps fare class codes to their price multiplier.
var classMultipliers = map[string]float64{
	"SL": 1.0, // Sleeper
	"3A": 2.5, // AC 3 Tier
	"2A": 3.5, // AC 2 Tier
	"1A": 5.0, // AC First Class
	"CC": 1.8, // Chair Car
	"EC": 2.2, // Executive Chair Car
	"2S": 0.6, // Second Sitting
}

// ClassMultiplier returns the multiplier for a class code. Unknown codes
// fall back to 1.0; callers validating against a train's class map reject
// unknown codes before this matters.
func ClassMultiplier(classCode string) float64 {
	if m, ok := classMultipliers[classCode]; ok {
		return m
	}
	return 1.0
}

// CalculateFare is pure and deterministic: distance x per-km rate x class
// multiplier, plus 5% service charge and 5% tax on that base product,
// rounded to 2 decimals.
func CalculateFare(distance float64, classCode string, farePerKM float64) float64 {
	base := distance * farePerKM * ClassMultiplier(classCode)
	serviceCharge := base * 0.05
	tax := base * 0.05
	return Round2(base + serviceCharge + tax)
}

// Round2 applies standard rounding to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
