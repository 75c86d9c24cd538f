// File: wastewise/handlers/bundle.go
package handlers

import (
	userRepoPkg "wastewise/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration can receive a single value.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Schedule endpoints.
	Schedule *ScheduleHandler

	// Road endpoints.
	Roads *RoadHandler

	// Auth and residents endpoints.
	Auth      *AuthHandler
	Residents *ResidentHandler

	// Bin endpoints.
	Bins *BinHandler

	// Pickup endpoints.
	Pickups *PickupHandler

	// Issue endpoints.
	Issues *IssueHandler

	// Community and recycling endpoints.
	Community *CommunityHandler
	Recycling *RecyclingHandler

	// Overview endpoint.
	Overview *OverviewHandler
}
