package overview

import (
	"context"
	"encoding/json"
	"time"

	binRepo "wastewise/database/repository/bin"
	issueRepo "wastewise/database/repository/issue"
	pickupRepo "wastewise/database/repository/pickup"
	roadRepo "wastewise/database/repository/road"
	scheduleRepo "wastewise/database/repository/schedule"
	userRepo "wastewise/database/repository/user"
	"wastewise/models"
	"wastewise/utils"

	"github.com/go-redis/redis/v8"
)

const (
	statsCacheKey = "overview:stats"
	statsCacheTTL = 30 * time.Second
)

// Stats is the dashboard overview aggregate.
type Stats struct {
	Residents            int64 `json:"residents"`
	Bins                 int64 `json:"bins"`
	PendingBinRequests   int64 `json:"pendingBinRequests"`
	PendingPickups       int64 `json:"pendingPickups"`
	ReportedIssues       int64 `json:"reportedIssues"`
	ScheduledCollections int64 `json:"scheduledCollections"`
	Roads                int64 `json:"roads"`
}

// OverviewService assembles the dashboard overview counters.
type OverviewService interface {
	// GetStats returns the overview counters, served from cache when fresh.
	GetStats(ctx context.Context) (*Stats, error)
}

// DefaultOverviewService is the production implementation. Cache may be
// nil, in which case every call recomputes the counters.
type DefaultOverviewService struct {
	Users     userRepo.UserRepository
	Bins      binRepo.BinRepository
	Pickups   pickupRepo.PickupRepository
	Issues    issueRepo.IssueRepository
	Schedules scheduleRepo.ScheduleRepository
	Roads     roadRepo.RoadRepository
	Cache     *redis.Client
}

// GetStats returns the overview counters. The aggregate is cached under
// a short TTL; a stale or unreachable cache falls through to a direct
// recompute rather than failing the request.
func (s *DefaultOverviewService) GetStats(ctx context.Context) (*Stats, error) {
	logger := utils.GetLogger().Sugar()

	if s.Cache != nil {
		raw, err := s.Cache.Get(ctx, statsCacheKey).Result()
		if err == nil {
			var cached Stats
			if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
				return &cached, nil
			}
		} else if err != redis.Nil {
			logger.Warnf("overview: cache read failed: %v", err)
		}
	}

	stats, err := s.compute()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.Cache.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
				logger.Warnf("overview: cache write failed: %v", err)
			}
		}
	}
	return stats, nil
}

func (s *DefaultOverviewService) compute() (*Stats, error) {
	users, err := s.Users.GetAll()
	if err != nil {
		return nil, err
	}
	var residents int64
	for _, u := range users {
		if u.IsResident() {
			residents++
		}
	}

	bins, err := s.Bins.CountBins()
	if err != nil {
		return nil, err
	}
	requests, err := s.Bins.CountRequests()
	if err != nil {
		return nil, err
	}
	pendingPickups, err := s.Pickups.CountByStatus(models.PickupStatusPending)
	if err != nil {
		return nil, err
	}
	issues, err := s.Issues.Count()
	if err != nil {
		return nil, err
	}
	entries, err := s.Schedules.GetAll()
	if err != nil {
		return nil, err
	}
	roads, err := s.Roads.GetAll()
	if err != nil {
		return nil, err
	}

	return &Stats{
		Residents:            residents,
		Bins:                 bins,
		PendingBinRequests:   requests,
		PendingPickups:       pendingPickups,
		ReportedIssues:       issues,
		ScheduledCollections: int64(len(entries)),
		Roads:                int64(len(roads)),
	}, nil
}
