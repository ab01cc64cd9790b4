package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Classification partitions organizations into display contexts. An
// organization with no classification belongs to neither directory.
type Classification string

const (
	ClassificationAssociate Classification = "associate"
	ClassificationCustomer  Classification = "customer"
)

type Organization struct {
	ID             string         `json:"id" gorm:"primaryKey;size:36"`
	UserID         string         `json:"user_id" gorm:"size:36;index;uniqueIndex:uniq_org_user_name"`
	Name           string         `json:"name" gorm:"uniqueIndex:uniq_org_user_name" validate:"required"`
	Relation       string         `json:"relation,omitempty"`
	Email          string         `json:"email,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	Website        string         `json:"website,omitempty"`
	Social         string         `json:"social,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	Address        string         `json:"address,omitempty"`
	City           string         `json:"city,omitempty"`
	State          string         `json:"state,omitempty"`
	Zip            string         `json:"zip,omitempty"`
	Country        string         `json:"country,omitempty"`
	Classification Classification `json:"classification,omitempty" gorm:"index"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	// Modeled as at-most-one per organization; the backend does not
	// enforce it, so readers must tolerate extra rows.
	Associates []AssociateProfile `json:"associates,omitempty" gorm:"foreignKey:OrganizationID"`
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityBusy      Availability = "busy"
	AvailabilityOffline   Availability = "offline"
)

// AssociateProfile is the nested sub-record an associate organization
// carries: rates, skills and location. Numeric fields are nullable in the
// raw row; defaulting happens in the view-model constructors, not here.
type AssociateProfile struct {
	ID             string       `json:"id" gorm:"primaryKey;size:36"`
	OrganizationID string       `json:"organization_id" gorm:"size:36;index"`
	Availability   Availability `json:"availability,omitempty"`
	HourlyRate     *float64     `json:"hourly_rate,omitempty"`
	Rating         *float64     `json:"rating,omitempty"`
	CompletedJobs  *int         `json:"completed_jobs,omitempty"`
	Skills         []string     `json:"skills,omitempty" gorm:"type:jsonb;serializer:json"`
	Certifications []string     `json:"certifications,omitempty" gorm:"type:jsonb;serializer:json"`
	Latitude       *float64     `json:"latitude,omitempty"`
	Longitude      *float64     `json:"longitude,omitempty"`
	JoinedAt       *time.Time   `json:"joined_at,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

func (a *AssociateProfile) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
