package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/gitsunil577/SafeHer-Backend/internal/domain"

	"github.com/google/uuid"
)

// Badge names and thresholds.
const (
	BadgeFirstResponder = "First Responder"
	BadgeHelper         = "Helper"    // 10 successful assists
	BadgeGuardian       = "Guardian"  // 25
	BadgeProtector      = "Protector" // 50
	BadgeLifesaver      = "Lifesaver" // 100
	BadgeQuickResponder = "Quick Responder"

	quickResponderMaxAvgSecs = 180.0
	quickResponderMinSamples = 5
)

var assistBadges = []struct {
	name      string
	threshold int
}{
	{BadgeHelper, 10},
	{BadgeGuardian, 25},
	{BadgeProtector, 50},
	{BadgeLifesaver, 100},
}

type reputationEngine struct {
	volunteers VolunteerStore
	logger     *slog.Logger
}

func NewReputationEngine(volunteers VolunteerStore, logger *slog.Logger) Reputation {
	return &reputationEngine{volunteers: volunteers, logger: logger}
}

// RecordResolution folds one resolved response into the volunteer's running
// stats and re-evaluates badge thresholds.
func (r *reputationEngine) RecordResolution(ctx context.Context, volunteerID uuid.UUID, responseSecs int64) error {
	v, err := r.volunteers.Get(ctx, volunteerID)
	if err != nil {
		return err
	}

	stats := v.Stats
	n := stats.TotalResponses + 1
	stats.AvgResponseSecs = runningAverage(stats.AvgResponseSecs, stats.TotalResponses, float64(responseSecs))
	stats.TotalResponses = n
	stats.SuccessfulAssists++

	v.Stats = stats
	badges := EvaluateBadges(v, time.Now().UTC())

	if err := r.volunteers.UpdateStats(ctx, volunteerID, stats, badges); err != nil {
		return err
	}

	r.logger.Info("volunteer stats updated",
		slog.String("volunteer_id", volunteerID.String()),
		slog.Int("total_responses", stats.TotalResponses),
		slog.Float64("avg_response_secs", stats.AvgResponseSecs),
	)
	return nil
}

// ApplyRating folds a 1-5 rating into the volunteer's running average.
func (r *reputationEngine) ApplyRating(ctx context.Context, volunteerID uuid.UUID, rating int) error {
	v, err := r.volunteers.Get(ctx, volunteerID)
	if err != nil {
		return err
	}

	stats := v.Stats
	stats.AvgRating = runningAverage(stats.AvgRating, stats.RatingCount, float64(rating))
	stats.RatingCount++

	return r.volunteers.UpdateStats(ctx, volunteerID, stats, v.Badges)
}

// runningAverage is the exact incremental mean: (avg*(n) + sample) / (n+1)
// expressed over the previous sample count.
func runningAverage(avg float64, prevCount int, sample float64) float64 {
	n := float64(prevCount + 1)
	return (avg*(n-1) + sample) / n
}

// EvaluateBadges returns the volunteer's badge set with any newly qualified
// badges appended. Idempotent: an earned badge is never re-awarded.
func EvaluateBadges(v *domain.Volunteer, now time.Time) []domain.Badge {
	badges := v.Badges

	award := func(name string) {
		if !v.HasBadge(name) {
			badges = append(badges, domain.Badge{Name: name, EarnedAt: now})
			v.Badges = badges
		}
	}

	if v.Stats.TotalResponses >= 1 {
		award(BadgeFirstResponder)
	}
	for _, b := range assistBadges {
		if v.Stats.SuccessfulAssists >= b.threshold {
			award(b.name)
		}
	}
	if v.Stats.TotalResponses >= quickResponderMinSamples &&
		v.Stats.AvgResponseSecs < quickResponderMaxAvgSecs {
		award(BadgeQuickResponder)
	}

	return badges
}
