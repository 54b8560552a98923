package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/gitsunil577/SafeHer-Backend/internal/config"
	"github.com/gitsunil577/SafeHer-Backend/internal/domain"
	"github.com/gitsunil577/SafeHer-Backend/internal/service"

	mock_service "github.com/gitsunil577/SafeHer-Backend/internal/service/mocks"
)

func matcherCfg() config.MatcherConfig {
	return config.MatcherConfig{
		SearchRadiusM:  5000,
		MaxVolunteers:  3,
		RosterCacheTTL: 30 * time.Second,
	}
}

func TestVolunteerMatcher_GeoResults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	volunteers := mock_service.NewMockVolunteerStore(ctrl)
	roster := mock_service.NewMockRosterCache(ctrl)

	near := domain.Volunteer{ID: uuid.New(), Lat: f64ptr(12.9720), Lng: f64ptr(77.5950)}
	noFix := domain.Volunteer{ID: uuid.New()}

	volunteers.EXPECT().
		FindNearby(gomock.Any(), 12.9716, 77.5946, 5000.0, 3).
		Return([]domain.MatchedVolunteer{{Volunteer: near}, {Volunteer: noFix}}, nil).
		Times(1)

	m := service.NewVolunteerMatcher(volunteers, roster, discardLogger(), matcherCfg())
	matched, err := m.Match(context.Background(), 12.9716, 77.5946)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matched))
	}
	if matched[0].DistanceM == nil {
		t.Fatalf("expected a distance for the volunteer with a fix")
	}
	if d := *matched[0].DistanceM; d < 40 || d > 80 {
		t.Fatalf("distance out of expected band: %f", d)
	}
	if matched[1].DistanceM != nil {
		t.Fatalf("volunteer without a fix must have no distance")
	}
}

func TestVolunteerMatcher_FallbackOnGeoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	volunteers := mock_service.NewMockVolunteerStore(ctrl)
	roster := mock_service.NewMockRosterCache(ctrl)

	volunteers.EXPECT().
		FindNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("postgis down")).
		Times(1)

	onDuty := []domain.Volunteer{{ID: uuid.New()}, {ID: uuid.New()}}
	roster.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(1)
	volunteers.EXPECT().ListOnDuty(gomock.Any(), 3).Return(onDuty, nil).Times(1)
	roster.EXPECT().Set(gomock.Any(), onDuty, 30*time.Second).Return(nil).Times(1)

	m := service.NewVolunteerMatcher(volunteers, roster, discardLogger(), matcherCfg())
	matched, err := m.Match(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matched) != 2 {
		t.Fatalf("expected the on-duty roster, got %d entries", len(matched))
	}
}

func TestVolunteerMatcher_FallbackOnEmptyGeo(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	volunteers := mock_service.NewMockVolunteerStore(ctrl)
	roster := mock_service.NewMockRosterCache(ctrl)

	volunteers.EXPECT().
		FindNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.MatchedVolunteer{}, nil).
		Times(1)

	// Cached roster serves the fallback without touching the store.
	cached := []domain.Volunteer{{ID: uuid.New()}}
	roster.EXPECT().Get(gomock.Any()).Return(cached, nil).Times(1)

	m := service.NewVolunteerMatcher(volunteers, roster, discardLogger(), matcherCfg())
	matched, err := m.Match(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matched) != 1 || matched[0].Volunteer.ID != cached[0].ID {
		t.Fatalf("expected cached roster, got %+v", matched)
	}
}

func TestVolunteerMatcher_FallbackCapsRoster(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	volunteers := mock_service.NewMockVolunteerStore(ctrl)
	roster := mock_service.NewMockRosterCache(ctrl)

	volunteers.EXPECT().
		FindNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("down")).
		Times(1)

	cached := []domain.Volunteer{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}
	roster.EXPECT().Get(gomock.Any()).Return(cached, nil).Times(1)

	m := service.NewVolunteerMatcher(volunteers, roster, discardLogger(), matcherCfg())
	matched, err := m.Match(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matched) != 3 {
		t.Fatalf("expected roster capped at 3, got %d", len(matched))
	}
}

func TestVolunteerMatcher_FallbackStoreError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	volunteers := mock_service.NewMockVolunteerStore(ctrl)
	roster := mock_service.NewMockRosterCache(ctrl)

	volunteers.EXPECT().
		FindNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("down")).
		Times(1)
	roster.EXPECT().Get(gomock.Any()).Return(nil, errors.New("redis down")).Times(1)

	wantErr := errors.New("db down")
	volunteers.EXPECT().ListOnDuty(gomock.Any(), 3).Return(nil, wantErr).Times(1)

	m := service.NewVolunteerMatcher(volunteers, roster, discardLogger(), matcherCfg())
	if _, err := m.Match(context.Background(), 1, 1); !errors.Is(err, wantErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}
