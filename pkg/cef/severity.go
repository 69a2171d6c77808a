package cef

// Severity level labels used by ArcSight for integer severities.
const (
	LevelUnknown  = "Unknown"
	LevelLow      = "Low"
	LevelMedium   = "Medium"
	LevelHigh     = "High"
	LevelVeryHigh = "Very-High"
)

// SeverityLevel maps an integer severity to its label:
// 0-3 Low, 4-6 Medium, 7-8 High, 9-10 Very-High. Values outside 0-10 are Unknown.
func SeverityLevel(severity int) string {
	switch {
	case severity < MinSeverity || severity > MaxSeverity:
		return LevelUnknown
	case severity <= 3:
		return LevelLow
	case severity <= 6:
		return LevelMedium
	case severity <= 8:
		return LevelHigh
	default:
		return LevelVeryHigh
	}
}
