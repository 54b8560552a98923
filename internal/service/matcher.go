package service

import (
	"context"
	"log/slog"

	"github.com/gitsunil577/SafeHer-Backend/internal/config"
	"github.com/gitsunil577/SafeHer-Backend/internal/domain"
	"github.com/gitsunil577/SafeHer-Backend/internal/geo"
)

type volunteerMatcher struct {
	volunteers VolunteerStore
	roster     RosterCache
	logger     *slog.Logger
	cfg        config.MatcherConfig
}

func NewVolunteerMatcher(volunteers VolunteerStore, roster RosterCache, logger *slog.Logger, cfg config.MatcherConfig) Matcher {
	return &volunteerMatcher{
		volunteers: volunteers,
		roster:     roster,
		logger:     logger,
		cfg:        cfg,
	}
}

// Match produces a ranked, size-capped list of eligible on-duty verified
// volunteers near the alert. When the geospatial query fails or comes back
// empty it falls back to the plain roster: an SOS must never go unnotified
// just because the geo index is unavailable or sparse.
func (m *volunteerMatcher) Match(ctx context.Context, lat, lng float64) ([]domain.MatchedVolunteer, error) {
	matched, err := m.volunteers.FindNearby(ctx, lat, lng, m.cfg.SearchRadiusM, m.cfg.MaxVolunteers)
	if err != nil {
		m.logger.Warn("geo query failed, falling back to roster", slog.Any("error", err))
	} else if len(matched) > 0 {
		for i := range matched {
			v := matched[i].Volunteer
			if v.Lat != nil && v.Lng != nil {
				d := geo.DistanceM(lat, lng, *v.Lat, *v.Lng)
				matched[i].DistanceM = &d
			}
		}
		return matched, nil
	}

	return m.fallback(ctx, lat, lng)
}

func (m *volunteerMatcher) fallback(ctx context.Context, lat, lng float64) ([]domain.MatchedVolunteer, error) {
	roster, err := m.roster.Get(ctx)
	if err != nil {
		m.logger.Warn("roster cache read failed", slog.Any("error", err))
		roster = nil
	}

	if roster == nil {
		roster, err = m.volunteers.ListOnDuty(ctx, m.cfg.MaxVolunteers)
		if err != nil {
			return nil, err
		}
		if err := m.roster.Set(ctx, roster, m.cfg.RosterCacheTTL); err != nil {
			m.logger.Warn("roster cache write failed", slog.Any("error", err))
		}
	}

	if len(roster) > m.cfg.MaxVolunteers {
		roster = roster[:m.cfg.MaxVolunteers]
	}

	matched := make([]domain.MatchedVolunteer, 0, len(roster))
	for _, v := range roster {
		mv := domain.MatchedVolunteer{Volunteer: v}
		// Distance against whatever fix the volunteer last reported,
		// unset when there is none.
		if v.Lat != nil && v.Lng != nil {
			d := geo.DistanceM(lat, lng, *v.Lat, *v.Lng)
			mv.DistanceM = &d
		}
		matched = append(matched, mv)
	}

	return matched, nil
}
