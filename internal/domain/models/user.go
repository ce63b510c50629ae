package models

// User is a read-only profile from the user directory.
type User struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Rating         float64 `json:"rating"`
	TripsCompleted int     `json:"tripsCompleted"`
}
