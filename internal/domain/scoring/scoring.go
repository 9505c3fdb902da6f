// Package scoring holds the point, tier and badge rules. It has no
// persistence; impl.scoringService applies these rules to stored profiles.
package scoring

import (
	"math"
	"time"

	"safezone/internal/domain/entity"
)

const (
	ReportBasePoints   = 10
	TimeBonusPoints    = 2
	ConfirmationPoints = 5

	// TimeBonusWindow is how fresh an incident must be to earn the bonus.
	TimeBonusWindow = time.Hour

	// DefaultConfirmationCap bounds how many confirmations of one incident earn points.
	DefaultConfirmationCap = 10

	// VerifiedConfirmationCount is the confirmation count at which a report counts as verified.
	VerifiedConfirmationCount = 3

	TruthTriangulatorConfirmations = 5
	AccuracyAceMinVerified         = 10
	AccuracyAceMinPercentage       = 95.0

	FirstResponderRadiusMeters = 1000.0
	FirstResponderWindow       = time.Hour
)

// Tier is one rung of the reputation ladder.
type Tier struct {
	Level     int
	Name      string
	MinPoints int
	Icon      string
	Reward    string
}

// Tiers is ordered from the highest tier down.
var Tiers = []Tier{
	{Level: 7, Name: "Legendary Watchmaster", MinPoints: 1200, Icon: "🌟", Reward: "Legendary frame"},
	{Level: 6, Name: "Safety Sentinel", MinPoints: 801, Icon: "👑", Reward: "Crown with sparkles"},
	{Level: 5, Name: "Truth Blazer", MinPoints: 501, Icon: "🔥", Reward: "Animated fire icon"},
	{Level: 4, Name: "Community Guardian", MinPoints: 301, Icon: "🦸", Reward: "Gold hero badge"},
	{Level: 3, Name: "Urban Detective", MinPoints: 151, Icon: "🔍", Reward: "Silver magnifier"},
	{Level: 2, Name: "Neighborhood Watch", MinPoints: 51, Icon: "🛡️", Reward: "Bronze shield"},
	{Level: 1, Name: "Fresh Eye Scout", MinPoints: 0, Icon: "👁️", Reward: "New Watcher badge"},
}

// TierFor returns the highest tier whose threshold is met.
func TierFor(points int) Tier {
	for _, tier := range Tiers {
		if points >= tier.MinPoints {
			return tier
		}
	}

	return Tiers[len(Tiers)-1]
}

// TierByLevel looks a tier up by its level.
func TierByLevel(level int) (Tier, bool) {
	for _, tier := range Tiers {
		if tier.Level == level {
			return tier, true
		}
	}

	return Tier{}, false
}

// ScoreResult describes a single point award.
type ScoreResult struct {
	Earned      int  `json:"points_earned"`
	Base        int  `json:"base_points"`
	TimeBonus   int  `json:"time_bonus"`
	TotalPoints int  `json:"total_points"`
	TierChanged bool `json:"tier_changed"`
	NewTier     *int `json:"new_tier,omitempty"`
}

// NewScoreResult fills in the tier transition between two tier levels.
func NewScoreResult(base, bonus, total, previousTier, currentTier int) *ScoreResult {
	result := &ScoreResult{
		Earned:      base + bonus,
		Base:        base,
		TimeBonus:   bonus,
		TotalPoints: total,
		TierChanged: previousTier != currentTier,
	}
	if result.TierChanged {
		tier := currentTier
		result.NewTier = &tier
	}

	return result
}

// ReportPoints returns base and bonus points for a report created at createdAt.
func ReportPoints(createdAt, now time.Time) (base, bonus int) {
	if now.Sub(createdAt) <= TimeBonusWindow {
		return ReportBasePoints, TimeBonusPoints
	}

	return ReportBasePoints, 0
}

// AccuracyPercentage is verified/reports as a percentage rounded to one decimal.
func AccuracyPercentage(verified, reports int) float64 {
	if reports <= 0 {
		return 0
	}

	return math.Round(float64(verified)/float64(reports)*1000) / 10
}

// EarnsConfirmationPoints reports whether the n-th confirmation of an
// incident is still within the cap.
func EarnsConfirmationPoints(n, confirmationCap int) bool {
	return n <= confirmationCap
}

// IsNightOwl reports whether t falls between 00:00 and 04:59 UTC.
func IsNightOwl(t time.Time) bool {
	return t.UTC().Hour() < 5
}

// QualifiesTruthTriangulator reports whether the confirmations badge is due.
func QualifiesTruthTriangulator(profile *entity.ScoreProfile) bool {
	return profile.ConfirmationsCount >= TruthTriangulatorConfirmations
}

// QualifiesAccuracyAce reports whether the accuracy badge is due.
func QualifiesAccuracyAce(profile *entity.ScoreProfile) bool {
	return profile.VerifiedReports >= AccuracyAceMinVerified &&
		AccuracyPercentage(profile.VerifiedReports, profile.ReportsCount) >= AccuracyAceMinPercentage
}
