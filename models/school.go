package models

type Stats struct {
	TotalStudents     int `json:"total_students"`
	TotalStaff        int `json:"total_staff"`
	TotalEvents       int `json:"total_events"`
	TotalAlumni       int `json:"total_alumni"`
	PendingAdmissions int `json:"pending_admissions"`
	ActiveRoutes      int `json:"active_routes"`
}

type BusRoute struct {
	ID              int    `json:"id"`
	RouteName       string `json:"route_name"`
	BusNumber       string `json:"bus_number"`
	DriverName      string `json:"driver_name"`
	CurrentLocation string `json:"current_location"`
}

type Book struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	Available int    `json:"available"`
}

type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"event_date"`
	Location    string `json:"location"`
	Category    string `json:"category"`
}

// Alumni leaves Designation and CurrentOrganization empty when the API sends null.
type Alumni struct {
	ID                  int    `json:"id"`
	FullName            string `json:"full_name"`
	GraduationYear      int    `json:"graduation_year"`
	CurrentOrganization string `json:"current_organization"`
	Designation         string `json:"designation"`
}

type Notice struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
}
