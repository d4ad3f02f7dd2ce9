package domain

import "github.com/shopspring/decimal"

// Chart series served to the dashboard.

type ThreatTypeCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DailyRisk is the average threat level of one day's incidents.
type DailyRisk struct {
	Date      Date            `json:"date"`
	RiskIndex decimal.Decimal `json:"riskIndex"`
	Incidents int             `json:"incidents"`
}

type WorkTypeShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type RiskTierCount struct {
	Tier  RiskTier `json:"tier"`
	Color string   `json:"color"`
	Count int      `json:"count"`
}

type DashboardSummary struct {
	Total       int               `json:"total"`
	ThreatTypes []ThreatTypeCount `json:"threatTypes"`
	DailyRisk   []DailyRisk       `json:"dailyRisk"`
	WorkTypes   []WorkTypeShare   `json:"workTypes"`
	RiskTiers   []RiskTierCount   `json:"riskTiers"`
}

// DailyLevels is the raw per-day input to DailyRisk.
type DailyLevels struct {
	Date  Date
	Sum   int
	Count int
}

// LevelCount is the number of incidents at one threat level.
type LevelCount struct {
	Level int
	Count int
}
