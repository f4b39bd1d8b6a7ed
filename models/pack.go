package models

// Pack is a purchasable membership bundle.
type Pack struct {
	ID            int     `json:"id"`
	PackName      string  `json:"pack_name"`
	Price         float64 `json:"price"`
	ClassQuantity int     `json:"class_quantity"`
	Months        int     `json:"months"`
	Gym           *GymRef `json:"gym,omitempty"`
}

// CreatePackRequest creates a pack in the staff member's gym.
type CreatePackRequest struct {
	PackName      string  `json:"pack_name"`
	Price         float64 `json:"price"`
	ClassQuantity int     `json:"class_quantity"`
	Months        int     `json:"months"`
	GymID         int     `json:"gym_id"`
}

// UpdatePackRequest updates an existing pack.
type UpdatePackRequest struct {
	PackName      string  `json:"pack_name"`
	Price         float64 `json:"price"`
	ClassQuantity int     `json:"class_quantity"`
	Months        int     `json:"months"`
}

// AssignPackRequest assigns a pack to a member for one discipline.
// Dates are RFC3339 timestamps.
type AssignPackRequest struct {
	StartDate      string `json:"start_date"`
	ExpirationDate string `json:"expiration_date"`
	Status         int    `json:"status"`
	GymID          int    `json:"gym_id"`
	UserID         int    `json:"user_id"`
	PackID         int    `json:"pack_id"`
	DisciplineID   int    `json:"discipline_id"`
}

// UserPack is the created assignment returned by the remote API.
type UserPack struct {
	ID             int    `json:"id"`
	StartDate      string `json:"start_date"`
	ExpirationDate string `json:"expiration_date"`
	Status         int    `json:"status"`
	UserID         int    `json:"user_id"`
	PackID         int    `json:"pack_id"`
}

// UserPackDisciplineRequest links an assignment to a discipline.
type UserPackDisciplineRequest struct {
	UserPackID   int `json:"user_pack_id"`
	DisciplineID int `json:"discipline_id"`
}
