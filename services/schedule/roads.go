package schedule

import (
	"fmt"
	"strings"
	"sync"

	roadRepo "wastewise/database/repository/road"
	"wastewise/models"
	"wastewise/utils"

	"go.uber.org/zap"
)

// DefaultRoadService is the production implementation.
type DefaultRoadService struct {
	Repo roadRepo.RoadRepository

	mu    sync.Mutex
	roads []models.Road
}

// NewRoadService constructs a road service and loads the initial list.
func NewRoadService(repo roadRepo.RoadRepository) (*DefaultRoadService, error) {
	svc := &DefaultRoadService{Repo: repo}
	if err := svc.Refresh(); err != nil {
		return nil, err
	}
	return svc, nil
}

// Refresh reloads the road list from the store.
func (s *DefaultRoadService) Refresh() error {
	roads, err := s.Repo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to refresh roads: %w", err)
	}

	s.mu.Lock()
	s.roads = roads
	s.mu.Unlock()
	return nil
}

// Roads returns a copy of the current road list.
func (s *DefaultRoadService) Roads() []models.Road {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Road, len(s.roads))
	copy(out, s.roads)
	return out
}

// AddRoad validates and persists a new road with no slot assigned.
// Name matching for duplicates is case-sensitive.
func (s *DefaultRoadService) AddRoad(name string) (*models.Road, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoadName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.roads {
		if r.Name == name {
			return nil, ErrDuplicateRoad
		}
	}

	road := models.Road{Name: name, TimeSlot: ""}
	if err := s.Repo.Create(&road); err != nil {
		return nil, fmt.Errorf("failed to add road: %w", err)
	}

	s.roads = append(s.roads, road)
	return &road, nil
}

// AssignTimeSlot applies the slot to the local list first, then locates
// the stored document by name and persists it. When no stored document
// matches, the optimistic local update is left in place; the divergence
// is logged but not corrected.
func (s *DefaultRoadService) AssignTimeSlot(name, slot string) error {
	s.mu.Lock()
	found := false
	for i := range s.roads {
		if s.roads[i].Name == name {
			s.roads[i].TimeSlot = slot
			found = true
			break
		}
	}
	if !found {
		s.roads = append(s.roads, models.Road{Name: name, TimeSlot: slot})
	}
	s.mu.Unlock()

	road, err := s.Repo.FindByName(name)
	if err != nil {
		return fmt.Errorf("failed to look up road %q: %w", name, err)
	}
	if road == nil {
		utils.GetLogger().Warn("Assigned time slot to road with no stored document",
			zap.String("road", name), zap.String("slot", slot))
		return nil
	}

	if err := s.Repo.UpdateTimeSlotByName(name, slot); err != nil {
		return fmt.Errorf("failed to persist time slot for road %q: %w", name, err)
	}
	return nil
}

// DeleteRoad removes the stored document when one exists, then the
// local entry. A store failure leaves the local list unchanged.
func (s *DefaultRoadService) DeleteRoad(name string) error {
	road, err := s.Repo.FindByName(name)
	if err != nil {
		return fmt.Errorf("failed to look up road %q: %w", name, err)
	}
	if road != nil {
		if err := s.Repo.DeleteByName(name); err != nil {
			return fmt.Errorf("failed to delete road %q: %w", name, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.roads {
		if s.roads[i].Name == name {
			s.roads = append(s.roads[:i], s.roads[i+1:]...)
			break
		}
	}
	return nil
}
