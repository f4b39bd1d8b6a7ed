package models

// Discipline is a class discipline offered by a gym.
type Discipline struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Gym  *GymRef `json:"gym,omitempty"`
}

// CreateDisciplineRequest creates a discipline in the staff member's gym.
type CreateDisciplineRequest struct {
	Name  string `json:"name"`
	GymID int    `json:"gym_id"`
}

// UpdateDisciplineRequest renames an existing discipline.
type UpdateDisciplineRequest struct {
	Name string `json:"name"`
}
