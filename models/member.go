package models

// Member is a gym member as returned by the remote users endpoints.
type Member struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Lastname  string  `json:"lastname"`
	Gender    string  `json:"gender"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	DNI       string  `json:"dni"`
	BirthDate string  `json:"birth_date"`
	Gym       *GymRef  `json:"gym,omitempty"`
	Role      *RoleRef `json:"role,omitempty"`
}

// MembersPage is one page of the paginated member listing.
type MembersPage struct {
	Users []Member `json:"users"`
	Total int      `json:"total"`
	Page  int      `json:"page"`
	Limit int      `json:"limit"`
}

// MemberUpdateRequest is the payload for updating a member. RoleID is pinned
// to the member role by the edit screen.
type MemberUpdateRequest struct {
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
	Gender    string `json:"gender"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	DNI       string `json:"dni"`
	BirthDate string `json:"birth_date"`
	GymID     int    `json:"gym_id"`
	RoleID    int    `json:"role_id"`
}

// RegisterRequest creates a new staff account against the remote register
// endpoint. RoleID selects the admin role on the registration screen.
type RegisterRequest struct {
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	Gender     string `json:"gender"`
	Phone      string `json:"phone"`
	MovilPhone string `json:"movil_phone"`
	Email      string `json:"email"`
	DNI        string `json:"dni"`
	BirthDate  string `json:"birth_date"`
	Password   string `json:"password"`
	GymID      int    `json:"gym_id"`
	RoleID     int    `json:"role_id"`
}
