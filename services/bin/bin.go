package bin

import (
	"fmt"
	"sort"

	binRepo "wastewise/database/repository/bin"
	"wastewise/models"
)

// BinService defines business logic for bin status and bin requests.
type BinService interface {
	// GetHomeNumbers lists the distinct home numbers that have bins.
	GetHomeNumbers() ([]string, error)
	// GetBinsForHome lists the bins registered to a home number.
	GetBinsForHome(homeNumber string) ([]models.Bin, error)
	// ActivateBin marks a bin Active.
	ActivateBin(binID string) error
	// ListRequests lists pending bin requests.
	ListRequests() ([]models.BinRequest, error)
	// ApproveRequest creates an inactive bin for the request's home
	// number and removes the request.
	ApproveRequest(requestID, homeNumber string) (*models.Bin, error)
	// ConfirmRequest marks a bin request Confirmed without provisioning.
	ConfirmRequest(requestID string) error
}

// DefaultBinService is the production implementation.
type DefaultBinService struct {
	Repo binRepo.BinRepository
}

// GetHomeNumbers derives the distinct, sorted home numbers from the bin list.
func (s *DefaultBinService) GetHomeNumbers() ([]string, error) {
	bins, err := s.Repo.GetAllBins()
	if err != nil {
		return nil, fmt.Errorf("failed to list home numbers: %w", err)
	}

	seen := make(map[string]struct{}, len(bins))
	var homes []string
	for _, b := range bins {
		if b.HomeNumber == "" {
			continue
		}
		if _, ok := seen[b.HomeNumber]; ok {
			continue
		}
		seen[b.HomeNumber] = struct{}{}
		homes = append(homes, b.HomeNumber)
	}
	sort.Strings(homes)
	return homes, nil
}

// GetBinsForHome lists the bins registered to a home number.
func (s *DefaultBinService) GetBinsForHome(homeNumber string) ([]models.Bin, error) {
	if homeNumber == "" {
		return nil, fmt.Errorf("home number is required")
	}
	return s.Repo.GetBinsByHomeNumber(homeNumber)
}

// ActivateBin marks a bin Active.
func (s *DefaultBinService) ActivateBin(binID string) error {
	return s.Repo.UpdateBinStatus(binID, models.BinStatusActive)
}

// ListRequests lists pending bin requests.
func (s *DefaultBinService) ListRequests() ([]models.BinRequest, error) {
	return s.Repo.GetAllRequests()
}

// ApproveRequest provisions an inactive bin for the home number, then
// consumes the request. The bin survives even when the request delete
// fails, so approval is never silently lost.
func (s *DefaultBinService) ApproveRequest(requestID, homeNumber string) (*models.Bin, error) {
	if requestID == "" || homeNumber == "" {
		return nil, fmt.Errorf("request id and home number are required")
	}

	newBin := models.Bin{HomeNumber: homeNumber, Status: models.BinStatusInactive}
	if err := s.Repo.CreateBin(&newBin); err != nil {
		return nil, fmt.Errorf("failed to provision bin: %w", err)
	}

	if err := s.Repo.DeleteRequest(requestID); err != nil {
		return &newBin, fmt.Errorf("bin provisioned but request not removed: %w", err)
	}
	return &newBin, nil
}

// ConfirmRequest marks a bin request Confirmed.
func (s *DefaultBinService) ConfirmRequest(requestID string) error {
	return s.Repo.UpdateRequestStatus(requestID, models.PickupStatusConfirmed)
}
