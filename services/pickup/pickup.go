package pickup

import (
	"context"
	"fmt"
	"time"

	pickupRepo "wastewise/database/repository/pickup"
	userRepo "wastewise/database/repository/user"
	"wastewise/models"
	"wastewise/utils"

	"firebase.google.com/go/v4/messaging"
)

// PickupService defines business logic for immediate pickup handling.
type PickupService interface {
	// GetPickups lists every immediate pickup.
	GetPickups() ([]models.ImmediatePickup, error)
	// ConfirmPickup marks a pickup Confirmed.
	ConfirmPickup(pickupID string) error
	// AssignDriver assigns a driver to a pickup and notifies the
	// requesting resident when they registered a device token.
	AssignDriver(pickupID, driver string) error
	// UpdateStatus sets a pickup's status.
	UpdateStatus(pickupID, status string) error
	// UpdateInstruction sets the collection instruction on a pickup.
	UpdateInstruction(pickupID, instruction string) error
	// GetDrivers lists the driver roster.
	GetDrivers() ([]models.Driver, error)
}

// DefaultPickupService is the production implementation.
type DefaultPickupService struct {
	Repo  pickupRepo.PickupRepository
	Users userRepo.UserRepository
}

// GetPickups lists every immediate pickup.
func (s *DefaultPickupService) GetPickups() ([]models.ImmediatePickup, error) {
	return s.Repo.GetAll()
}

// ConfirmPickup marks a pickup Confirmed.
func (s *DefaultPickupService) ConfirmPickup(pickupID string) error {
	return s.Repo.UpdateStatus(pickupID, models.PickupStatusConfirmed)
}

// AssignDriver assigns a driver and pushes a notification to the
// resident's device. Notification failures are logged, not surfaced:
// the assignment itself already succeeded.
func (s *DefaultPickupService) AssignDriver(pickupID, driver string) error {
	if driver == "" {
		return fmt.Errorf("driver name is required")
	}
	if err := s.Repo.AssignDriver(pickupID, driver); err != nil {
		return err
	}
	s.notifyResident(pickupID, driver)
	return nil
}

// UpdateStatus sets a pickup's status.
func (s *DefaultPickupService) UpdateStatus(pickupID, status string) error {
	if status != models.PickupStatusPending && status != models.PickupStatusConfirmed {
		return fmt.Errorf("invalid pickup status %q", status)
	}
	return s.Repo.UpdateStatus(pickupID, status)
}

// UpdateInstruction sets the collection instruction on a pickup.
func (s *DefaultPickupService) UpdateInstruction(pickupID, instruction string) error {
	return s.Repo.UpdateInstruction(pickupID, instruction)
}

// GetDrivers lists the driver roster.
func (s *DefaultPickupService) GetDrivers() ([]models.Driver, error) {
	return s.Repo.GetDrivers()
}

func (s *DefaultPickupService) notifyResident(pickupID, driver string) {
	logger := utils.GetLogger().Sugar()
	if utils.FCMClient == nil || s.Users == nil {
		return
	}

	pickups, err := s.Repo.GetAll()
	if err != nil {
		logger.Warnf("pickup %s: could not load pickup for notification: %v", pickupID, err)
		return
	}
	var target *models.ImmediatePickup
	for i := range pickups {
		if pickups[i].ID == pickupID {
			target = &pickups[i]
			break
		}
	}
	if target == nil || target.HomeNumber == "" {
		return
	}

	users, err := s.Users.GetAll()
	if err != nil {
		logger.Warnf("pickup %s: could not load residents for notification: %v", pickupID, err)
		return
	}
	var token string
	for _, u := range users {
		if u.HomeNumber == target.HomeNumber && u.DeviceToken != "" {
			token = u.DeviceToken
			break
		}
	}
	if token == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = utils.FCMClient.Send(ctx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: "Pickup driver assigned",
			Body:  fmt.Sprintf("%s will collect your bin at %s", driver, target.PickupTime),
		},
	})
	if err != nil {
		logger.Warnf("pickup %s: push notification failed: %v", pickupID, err)
	}
}
