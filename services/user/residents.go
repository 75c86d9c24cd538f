package user

import (
	"fmt"
	"strings"

	"wastewise/models"
)

// GetResidents lists resident accounts. The search term matches name,
// email, or home number case-insensitively; the road filter matches
// anywhere in the address.
func (s *DefaultUserService) GetResidents(search, road string) ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch residents: %w", err)
	}

	search = strings.ToLower(strings.TrimSpace(search))
	road = strings.ToLower(strings.TrimSpace(road))

	residents := make([]models.User, 0, len(users))
	for _, u := range users {
		if !u.IsResident() {
			continue
		}
		if search != "" && !matchesSearch(u, search) {
			continue
		}
		if road != "" && !strings.Contains(strings.ToLower(u.Address), road) {
			continue
		}
		u.PasswordHash = ""
		u.TokenHash = ""
		residents = append(residents, u)
	}
	return residents, nil
}

func matchesSearch(u models.User, search string) bool {
	return strings.Contains(strings.ToLower(u.Name), search) ||
		strings.Contains(strings.ToLower(u.Email), search) ||
		strings.Contains(strings.ToLower(u.HomeNumber), search)
}
