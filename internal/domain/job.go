package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobStatus string

const (
	JobStatusNew        JobStatus = "New"
	JobStatusScheduled  JobStatus = "Scheduled"
	JobStatusInProgress JobStatus = "In Progress"
	JobStatusCompleted  JobStatus = "Completed"
	JobStatusCancelled  JobStatus = "Cancelled"
)

type JobPriority string

const (
	JobPriorityLow    JobPriority = "Low"
	JobPriorityMedium JobPriority = "Medium"
	JobPriorityHigh   JobPriority = "High"
	JobPriorityUrgent JobPriority = "Urgent"
)

// ValidJobStatus reports whether s is one of the job statuses.
func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusNew, JobStatusScheduled, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

// ValidJobPriority reports whether p is one of the job priorities.
func ValidJobPriority(p JobPriority) bool {
	switch p {
	case JobPriorityLow, JobPriorityMedium, JobPriorityHigh, JobPriorityUrgent:
		return true
	}
	return false
}

type Job struct {
	ID             string      `json:"id" gorm:"primaryKey;size:36"`
	UserID         string      `json:"user_id" gorm:"size:36;index"`
	Title          string      `json:"title" validate:"required"`
	Description    string      `json:"description,omitempty"`
	Phase          string      `json:"phase,omitempty"`
	Status         JobStatus   `json:"status"`
	Priority       JobPriority `json:"priority"`
	StartDate      *time.Time  `json:"start_date,omitempty"`
	EndDate        *time.Time  `json:"end_date,omitempty"`
	CustomerID     string      `json:"customer_id,omitempty" gorm:"size:36;index"`
	OrganizationID string      `json:"organization_id,omitempty" gorm:"size:36;index"`
	PersonID       string      `json:"person_id,omitempty" gorm:"size:36;index"`
	Tags           []string    `json:"tags,omitempty" gorm:"type:jsonb;serializer:json"`
	AssignedTechs  []string    `json:"assigned_techs,omitempty" gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`

	// Display joins. Customer points at the customer organization.
	Customer     *Organization `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	Person       *Person       `json:"person,omitempty" gorm:"foreignKey:PersonID"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}
