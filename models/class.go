package models

// Class is one scheduled class on the weekly agenda.
type Class struct {
	ID         int        `json:"id"`
	Date       string     `json:"date"`
	Time       string     `json:"time"`
	DayOfWeek  string     `json:"day_of_week"`
	Capacity   int        `json:"capacity"`
	Enrolled   int        `json:"enrolled"`
	Vacancy    int        `json:"vacancy"`
	Gym        GymRef     `json:"gym"`
	Discipline Discipline `json:"discipline"`
}

// ClassesResponse is the remote payload for one week of classes. Classes may
// be null when the week is empty.
type ClassesResponse struct {
	Classes   []Class `json:"classes"`
	WeekStart string  `json:"week_start"`
	WeekEnd   string  `json:"week_end"`
}

// Enrollment is one roster entry for a class.
type Enrollment struct {
	ID   int `json:"id"`
	User struct {
		ID       int    `json:"id"`
		Name     string `json:"name"`
		Lastname string `json:"lastname"`
		DNI      string `json:"dni"`
	} `json:"user"`
	Class    Class  `json:"class"`
	Status   string `json:"status"`
	Reserved string `json:"reserved"`
}
