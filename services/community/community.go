package community

import (
	"context"
	"fmt"
	"strings"
	"time"

	communityRepo "wastewise/database/repository/community"
	"wastewise/models"
	"wastewise/services/storage"
)

// CommunityService defines business logic for the sharing hub and the
// awareness zone.
type CommunityService interface {
	// SearchSharedItems lists shared items, filtered by a case-insensitive
	// query over title and owner when the query is non-empty.
	SearchSharedItems(query string) ([]models.SharedItem, error)
	// GetSharedItem retrieves a single shared item.
	GetSharedItem(itemID string) (*models.SharedItem, error)
	// ShareItem creates a new shared item listing.
	ShareItem(item *models.SharedItem) error
	// AttachPhoto uploads a photo for a shared item and stores its URL.
	AttachPhoto(ctx context.Context, itemID, localFilePath string) (string, error)
	// RemoveSharedItem deletes a shared item listing.
	RemoveSharedItem(itemID string) error

	// GetAwareness returns the awareness-zone details grouped by section.
	GetAwareness() (map[string][]models.AwarenessDetail, error)
	// AddAwarenessDetail records a new awareness-zone detail.
	AddAwarenessDetail(detail *models.AwarenessDetail) error
}

// DefaultCommunityService is the production implementation.
type DefaultCommunityService struct {
	Repo    communityRepo.CommunityRepository
	Storage storage.StorageService
}

// SearchSharedItems lists shared items, filtered by query when given.
func (s *DefaultCommunityService) SearchSharedItems(query string) ([]models.SharedItem, error) {
	items, err := s.Repo.GetSharedItems()
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items, nil
	}
	var out []models.SharedItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), query) ||
			strings.Contains(strings.ToLower(item.Owner), query) {
			out = append(out, item)
		}
	}
	return out, nil
}

// GetSharedItem retrieves a single shared item.
func (s *DefaultCommunityService) GetSharedItem(itemID string) (*models.SharedItem, error) {
	item, err := s.Repo.GetSharedItemByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("shared item not found")
	}
	return item, nil
}

// ShareItem creates a new listing. Title and owner are required.
func (s *DefaultCommunityService) ShareItem(item *models.SharedItem) error {
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return fmt.Errorf("item title is required")
	}
	if item.Owner == "" {
		return fmt.Errorf("item owner is required")
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	return s.Repo.CreateSharedItem(item)
}

// AttachPhoto uploads the photo and stores the delivery URL on the item.
func (s *DefaultCommunityService) AttachPhoto(ctx context.Context, itemID, localFilePath string) (string, error) {
	if s.Storage == nil {
		return "", fmt.Errorf("photo storage is not configured")
	}
	if _, err := s.GetSharedItem(itemID); err != nil {
		return "", err
	}
	url, err := s.Storage.UploadPhoto(ctx, localFilePath, "shared-items")
	if err != nil {
		return "", fmt.Errorf("failed to upload item photo: %w", err)
	}
	if err := s.Repo.UpdateSharedItemPhoto(itemID, url); err != nil {
		return "", err
	}
	return url, nil
}

// RemoveSharedItem deletes a shared item listing.
func (s *DefaultCommunityService) RemoveSharedItem(itemID string) error {
	return s.Repo.DeleteSharedItem(itemID)
}

// GetAwareness groups the awareness-zone details by their section type.
// Every known section appears in the result, empty or not, so clients
// can render all sections without probing.
func (s *DefaultCommunityService) GetAwareness() (map[string][]models.AwarenessDetail, error) {
	details, err := s.Repo.GetAwarenessDetails()
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]models.AwarenessDetail, len(models.AwarenessSections))
	for _, section := range models.AwarenessSections {
		grouped[section] = []models.AwarenessDetail{}
	}
	for _, d := range details {
		grouped[d.Type] = append(grouped[d.Type], d)
	}
	return grouped, nil
}

// AddAwarenessDetail records a new awareness-zone detail.
func (s *DefaultCommunityService) AddAwarenessDetail(detail *models.AwarenessDetail) error {
	if !models.IsValidAwarenessSection(detail.Type) {
		return fmt.Errorf("unknown awareness section %q", detail.Type)
	}
	if strings.TrimSpace(detail.Description) == "" {
		return fmt.Errorf("detail description is required")
	}
	return s.Repo.CreateAwarenessDetail(detail)
}
