package models

// GymRef identifies the gym a record belongs to.
type GymRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RoleRef identifies a staff or member role.
type RoleRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Profile is the canonical identity of the authenticated staff member.
// It is always produced by NormalizeProfile; nothing else constructs one
// from remote API data.
type Profile struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Lastname string  `json:"lastname"`
	Email    string  `json:"email"`
	Gym      *GymRef `json:"gym,omitempty"`
	Role     RoleRef `json:"role"`
}

// RawProfile mirrors the heterogeneous field naming the remote API uses for
// user identity across its endpoints (name/first_name, lastname/last_name/
// surname, embedded role vs. role_id+role_name).
type RawProfile struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	FirstName string   `json:"first_name"`
	Lastname  string   `json:"lastname"`
	LastName  string   `json:"last_name"`
	Surname   string   `json:"surname"`
	Email     string   `json:"email"`
	Gym       *GymRef  `json:"gym"`
	Role      *RoleRef `json:"role"`
	RoleID    int      `json:"role_id"`
	RoleName  string   `json:"role_name"`
}

// NormalizeProfile folds the remote API's field variants into the canonical
// Profile shape at the API boundary.
func NormalizeProfile(raw RawProfile) Profile {
	p := Profile{
		ID:    raw.ID,
		Email: raw.Email,
		Gym:   raw.Gym,
	}

	p.Name = firstNonEmpty(raw.Name, raw.FirstName)
	p.Lastname = firstNonEmpty(raw.Lastname, raw.LastName, raw.Surname)

	if raw.Role != nil {
		p.Role = *raw.Role
	} else {
		name := raw.RoleName
		if name == "" {
			name = "Member"
		}
		p.Role = RoleRef{ID: raw.RoleID, Name: name}
	}
	return p
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
