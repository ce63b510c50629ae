package repositories

import "roadbuddy/internal/domain/models"

// UserDirectory is a read-only profile table.
type UserDirectory struct {
	users map[string]models.User
}

func NewUserDirectory(users ...models.User) UserDirectory {
	m := make(map[string]models.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return UserDirectory{users: m}
}

func (d UserDirectory) Get(id string) (models.User, bool) {
	u, ok := d.users[id]
	return u, ok
}

// DemoUsers is the profile set the service starts with.
func DemoUsers() []models.User {
	return []models.User{
		{
			ID:             "demo-user",
			Name:           "Demo User",
			Email:          "demo@roadbuddy.com",
			Phone:          "+1-555-0123",
			Rating:         4.7,
			TripsCompleted: 15,
		},
	}
}
