package models

// Block is a time-bounded class slot inside a weekday template.
type Block struct {
	ID         int        `json:"id"`
	StartTime  string     `json:"start_time"`
	EndTime    string     `json:"end_time"`
	Capacity   int        `json:"capacity"`
	Discipline Discipline `json:"discipline"`
}

// ScheduleTemplate is the per-weekday schedule definition for a gym. Blocks
// are not checked for overlaps on this side; the remote API owns that rule.
type ScheduleTemplate struct {
	ID     int     `json:"id"`
	Day    string  `json:"day"`
	Gym    *GymRef `json:"gym,omitempty"`
	Blocks []Block `json:"blocks"`
}

// BlockRequest creates or updates a schedule block within a template.
type BlockRequest struct {
	TemplateID   int    `json:"template_id"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Capacity     int    `json:"capacity"`
	DisciplineID int    `json:"discipline_id"`
}

// GenerateClassesRequest materializes agenda classes from the templates for
// every day in the [From, To] date range (YYYY-MM-DD).
type GenerateClassesRequest struct {
	GymID int    `json:"gym_id"`
	From  string `json:"from"`
	To    string `json:"to"`
}
