package client

import "time"

// Wire types mirror the API's JSON. They are deliberately independent of
// the server's internal packages so importers of this package stay
// decoupled from them.

type Organization struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Relation       string    `json:"relation,omitempty"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Website        string    `json:"website,omitempty"`
	Social         string    `json:"social,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Address        string    `json:"address,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	Zip            string    `json:"zip,omitempty"`
	Country        string    `json:"country,omitempty"`
	Classification string    `json:"classification,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type Associate struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	Availability     string     `json:"availability"`
	HourlyRate       float64    `json:"hourly_rate"`
	Rating           float64    `json:"rating"`
	CompletedJobs    int        `json:"completed_jobs"`
	Skills           []string   `json:"skills"`
	Certifications   []string   `json:"certifications"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	JoinedAt         *time.Time `json:"joined_at,omitempty"`
	OrganizationID   string     `json:"organization_id"`
	OrganizationName string     `json:"organization_name"`
}

type Customer struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Address     string     `json:"address,omitempty"`
	City        string     `json:"city,omitempty"`
	State       string     `json:"state,omitempty"`
	Status      string     `json:"status"`
	TotalJobs   int        `json:"total_jobs"`
	LastContact *time.Time `json:"last_contact,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Person struct {
	ID                      string    `json:"id"`
	FirstName               string    `json:"first_name"`
	LastName                string    `json:"last_name"`
	FullName                string    `json:"full_name"`
	Title                   string    `json:"title,omitempty"`
	Email                   string    `json:"email,omitempty"`
	Phone                   string    `json:"phone,omitempty"`
	Mobile                  string    `json:"mobile,omitempty"`
	IsTechnician            bool      `json:"is_technician"`
	OrganizationID          string    `json:"organization_id,omitempty"`
	OrganizationName        string    `json:"organization_name"`
	OrganizationIsAssociate bool      `json:"organization_is_associate"`
	CreatedAt               time.Time `json:"created_at"`
}

type Job struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Phase              string     `json:"phase,omitempty"`
	Status             string     `json:"status"`
	Priority           string     `json:"priority"`
	StartDate          *time.Time `json:"start_date,omitempty"`
	EndDate            *time.Time `json:"end_date,omitempty"`
	CustomerID         string     `json:"customer_id,omitempty"`
	OrganizationID     string     `json:"organization_id,omitempty"`
	PersonID           string     `json:"person_id,omitempty"`
	CustomerName       string     `json:"customer_name"`
	OrganizationName   string     `json:"organization_name"`
	AssignedPersonName string     `json:"assigned_person_name"`
	Tags               []string   `json:"tags"`
	AssignedTechs      []string   `json:"assigned_techs"`
	CreatedAt          time.Time  `json:"created_at"`
}

type CreateOrganizationRequest struct {
	Name           string `json:"name"`
	Relation       string `json:"relation,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Website        string `json:"website,omitempty"`
	Social         string `json:"social,omitempty"`
	Notes          string `json:"notes,omitempty"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	Zip            string `json:"zip,omitempty"`
	Country        string `json:"country,omitempty"`
	Classification string `json:"classification,omitempty"`
}

type CreateJobRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Phase          string     `json:"phase,omitempty"`
	Status         string     `json:"status,omitempty"`
	Priority       string     `json:"priority,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	CustomerID     string     `json:"customer_id,omitempty"`
	OrganizationID string     `json:"organization_id,omitempty"`
	PersonID       string     `json:"person_id,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	AssignedTechs  []string   `json:"assigned_techs,omitempty"`
}
