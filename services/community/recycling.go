package community

import (
	"fmt"
	"strings"

	recyclingRepo "wastewise/database/repository/recycling"
	"wastewise/models"
)

// RecyclingService defines business logic for the recycling info view.
type RecyclingService interface {
	// GetRecyclingInfo assembles the full recycling aggregate.
	GetRecyclingInfo() (*models.RecyclingInfo, error)
	AddCategory(category *models.RecyclingCategory) error
	AddSegregation(entry *models.WasteSegregation) error
	AddMotivation(motivation *models.RecyclingMotivation) error
	AddCenter(center *models.RecyclingCenter) error
}

// DefaultRecyclingService is the production implementation.
type DefaultRecyclingService struct {
	Repo recyclingRepo.RecyclingRepository
}

// GetRecyclingInfo assembles the four recycling collections into the
// aggregate the dashboard renders.
func (s *DefaultRecyclingService) GetRecyclingInfo() (*models.RecyclingInfo, error) {
	categories, err := s.Repo.GetCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load recycling categories: %w", err)
	}
	segregation, err := s.Repo.GetSegregationGuide()
	if err != nil {
		return nil, fmt.Errorf("failed to load segregation guide: %w", err)
	}
	motivations, err := s.Repo.GetMotivations()
	if err != nil {
		return nil, fmt.Errorf("failed to load motivations: %w", err)
	}
	centers, err := s.Repo.GetCenters()
	if err != nil {
		return nil, fmt.Errorf("failed to load recycling centers: %w", err)
	}
	return &models.RecyclingInfo{
		Categories:       categories,
		WasteSegregation: segregation,
		Motivations:      motivations,
		RecyclingCenters: centers,
	}, nil
}

func (s *DefaultRecyclingService) AddCategory(category *models.RecyclingCategory) error {
	if strings.TrimSpace(category.Name) == "" {
		return fmt.Errorf("category name is required")
	}
	return s.Repo.CreateCategory(category)
}

func (s *DefaultRecyclingService) AddSegregation(entry *models.WasteSegregation) error {
	if strings.TrimSpace(entry.Type) == "" {
		return fmt.Errorf("segregation type is required")
	}
	return s.Repo.CreateSegregation(entry)
}

func (s *DefaultRecyclingService) AddMotivation(motivation *models.RecyclingMotivation) error {
	if strings.TrimSpace(motivation.Tip) == "" {
		return fmt.Errorf("motivation tip is required")
	}
	return s.Repo.CreateMotivation(motivation)
}

func (s *DefaultRecyclingService) AddCenter(center *models.RecyclingCenter) error {
	if strings.TrimSpace(center.Name) == "" {
		return fmt.Errorf("center name is required")
	}
	if strings.TrimSpace(center.Address) == "" {
		return fmt.Errorf("center address is required")
	}
	return s.Repo.CreateCenter(center)
}
