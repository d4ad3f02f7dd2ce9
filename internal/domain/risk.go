package domain

// RiskTier is the three-step severity scheme used for colors and badges.
type RiskTier string

const (
	RiskTierLow    RiskTier = "low"
	RiskTierMedium RiskTier = "medium"
	RiskTierHigh   RiskTier = "high"
)

// RiskTierForLevel buckets a threat level. Only 1 and 2 are distinguished;
// every other value, including 0 and out-of-range levels, is high.
func RiskTierForLevel(level int) RiskTier {
	switch level {
	case 1:
		return RiskTierLow
	case 2:
		return RiskTierMedium
	default:
		return RiskTierHigh
	}
}

func (t RiskTier) Color() string {
	switch t {
	case RiskTierLow:
		return "#4CAF50"
	case RiskTierMedium:
		return "#FFB61A"
	default:
		return "#E53935"
	}
}

// ThreatLevelColor is RiskTierForLevel(level).Color().
func ThreatLevelColor(level int) string {
	return RiskTierForLevel(level).Color()
}
