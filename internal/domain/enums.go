package domain

// RiskFlag classifies a contractor by reliability index.
type RiskFlag string

const (
	RiskHigh RiskFlag = "High Risk"
	RiskLow  RiskFlag = "Low Risk"
)

// RiskFlagFor returns RiskHigh when index is below RiskThreshold.
func RiskFlagFor(index float64) RiskFlag {
	if index < RiskThreshold {
		return RiskHigh
	}
	return RiskLow
}

// Business rules for filtering and scoring.
const (
	MinFundingYear = 2021
	MaxFundingYear = 2023

	// DateLayout is the calendar format of the start and end date columns.
	DateLayout = "2006-01-02"

	// HighDelayThresholdDays marks a project as highly delayed when its
	// delay is strictly greater than this.
	HighDelayThresholdDays = 30
	// DelayEpsilon is the smallest |average delay| that yields an
	// efficiency score.
	DelayEpsilon = 0.001
	// ReliabilityDelayDays is the delay at which the delay factor of the
	// reliability index reaches zero.
	ReliabilityDelayDays = 90.0

	MinContractorProjects = 5
	TopContractorLimit    = 15

	RiskThreshold = 50.0
	ScoreCap      = 100.0
)

// InFundingWindow reports whether year falls in [MinFundingYear, MaxFundingYear].
func InFundingWindow(year int) bool {
	return year >= MinFundingYear && year <= MaxFundingYear
}
