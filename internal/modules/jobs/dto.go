package jobs

import (
	"time"

	"fieldops/internal/domain"
)

// JobTask and TimelineEntry give tasks/timeline a stable shape. Neither
// has a backing join yet, so fetched jobs always carry them empty.
type JobTask struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

type TimelineEntry struct {
	At   time.Time `json:"at"`
	Note string    `json:"note"`
}

type JobView struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description,omitempty"`
	Phase              string             `json:"phase,omitempty"`
	Status             domain.JobStatus   `json:"status"`
	Priority           domain.JobPriority `json:"priority"`
	StartDate          *time.Time         `json:"start_date,omitempty"`
	EndDate            *time.Time         `json:"end_date,omitempty"`
	CustomerID         string             `json:"customer_id,omitempty"`
	OrganizationID     string             `json:"organization_id,omitempty"`
	PersonID           string             `json:"person_id,omitempty"`
	CustomerName       string             `json:"customer_name"`
	OrganizationName   string             `json:"organization_name"`
	AssignedPersonName string             `json:"assigned_person_name"`
	Tags               []string           `json:"tags"`
	AssignedTechs      []string           `json:"assigned_techs"`
	Tasks              []JobTask          `json:"tasks"`
	Timeline           []TimelineEntry    `json:"timeline"`
	CreatedAt          time.Time          `json:"created_at"`
}

// NewJobView resolves the display joins once, at the mapping boundary.
// Missing joins yield empty strings, never nulls.
func NewJobView(job domain.Job) JobView {
	view := JobView{
		ID:             job.ID,
		Title:          job.Title,
		Description:    job.Description,
		Phase:          job.Phase,
		Status:         job.Status,
		Priority:       job.Priority,
		StartDate:      job.StartDate,
		EndDate:        job.EndDate,
		CustomerID:     job.CustomerID,
		OrganizationID: job.OrganizationID,
		PersonID:       job.PersonID,
		Tags:           []string{},
		AssignedTechs:  []string{},
		Tasks:          []JobTask{},
		Timeline:       []TimelineEntry{},
		CreatedAt:      job.CreatedAt,
	}

	if job.Tags != nil {
		view.Tags = job.Tags
	}
	if job.AssignedTechs != nil {
		view.AssignedTechs = job.AssignedTechs
	}

	if job.Customer != nil {
		view.CustomerName = job.Customer.Name
	}
	if job.Organization != nil {
		view.OrganizationName = job.Organization.Name
	}
	if job.Person != nil {
		view.AssignedPersonName = job.Person.FullName()
	}

	return view
}

type CreateJobRequest struct {
	Title          string     `json:"title" validate:"required"`
	Description    string     `json:"description"`
	Phase          string     `json:"phase"`
	Status         string     `json:"status" validate:"omitempty,oneof=New Scheduled 'In Progress' Completed Cancelled"`
	Priority       string     `json:"priority" validate:"omitempty,oneof=Low Medium High Urgent"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	CustomerID     string     `json:"customer_id"`
	OrganizationID string     `json:"organization_id"`
	PersonID       string     `json:"person_id"`
	Tags           []string   `json:"tags"`
	AssignedTechs  []string   `json:"assigned_techs"`
}
