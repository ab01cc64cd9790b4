package directory

import (
	"time"

	"fieldops/internal/domain"
)

// ---------- VIEW MODELS ----------
//
// One constructor per view type holds every defaulting and derivation
// rule; nothing downstream re-derives fields at render time.

type OrganizationView struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Relation       string                `json:"relation,omitempty"`
	Email          string                `json:"email,omitempty"`
	Phone          string                `json:"phone,omitempty"`
	Website        string                `json:"website,omitempty"`
	Social         string                `json:"social,omitempty"`
	Notes          string                `json:"notes,omitempty"`
	Address        string                `json:"address,omitempty"`
	City           string                `json:"city,omitempty"`
	State          string                `json:"state,omitempty"`
	Zip            string                `json:"zip,omitempty"`
	Country        string                `json:"country,omitempty"`
	Classification domain.Classification `json:"classification,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

func NewOrganizationView(org domain.Organization) OrganizationView {
	return OrganizationView{
		ID:             org.ID,
		Name:           org.Name,
		Relation:       org.Relation,
		Email:          org.Email,
		Phone:          org.Phone,
		Website:        org.Website,
		Social:         org.Social,
		Notes:          org.Notes,
		Address:        org.Address,
		City:           org.City,
		State:          org.State,
		Zip:            org.Zip,
		Country:        org.Country,
		Classification: org.Classification,
		CreatedAt:      org.CreatedAt,
	}
}

type AssociateView struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Email            string              `json:"email,omitempty"`
	Phone            string              `json:"phone,omitempty"`
	Website          string              `json:"website,omitempty"`
	Social           string              `json:"social,omitempty"`
	Availability     domain.Availability `json:"availability"`
	HourlyRate       float64             `json:"hourly_rate"`
	Rating           float64             `json:"rating"`
	CompletedJobs    int                 `json:"completed_jobs"`
	Skills           []string            `json:"skills"`
	Certifications   []string            `json:"certifications"`
	Latitude         *float64            `json:"latitude,omitempty"`
	Longitude        *float64            `json:"longitude,omitempty"`
	JoinedAt         *time.Time          `json:"joined_at,omitempty"`
	OrganizationID   string              `json:"organization_id"`
	OrganizationName string              `json:"organization_name"`
}

// NewAssociateView builds the associate directory entry for an
// organization classified as associate. The profile embed is modeled as
// at-most-one; when the backend hands back more rows anyway, the first
// element wins and the rest are ignored.
func NewAssociateView(org domain.Organization) AssociateView {
	view := AssociateView{
		ID:               org.ID,
		Name:             org.Name,
		Email:            org.Email,
		Phone:            org.Phone,
		Website:          org.Website,
		Social:           org.Social,
		Availability:     domain.AvailabilityAvailable,
		Skills:           []string{},
		Certifications:   []string{},
		OrganizationID:   org.ID,
		OrganizationName: org.Name,
	}

	if len(org.Associates) == 0 {
		return view
	}

	profile := org.Associates[0]

	view.ID = profile.ID
	if profile.Availability != "" {
		view.Availability = profile.Availability
	}
	view.HourlyRate = nonNegative(profile.HourlyRate)
	view.Rating = nonNegative(profile.Rating)
	if profile.CompletedJobs != nil && *profile.CompletedJobs > 0 {
		view.CompletedJobs = *profile.CompletedJobs
	}
	if profile.Skills != nil {
		view.Skills = profile.Skills
	}
	if profile.Certifications != nil {
		view.Certifications = profile.Certifications
	}
	view.Latitude = profile.Latitude
	view.Longitude = profile.Longitude
	view.JoinedAt = profile.JoinedAt

	return view
}

type CustomerView struct {
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

// NewCustomerView projects a customer-classified organization into the
// customer directory. Status is fixed and total_jobs is a placeholder
// until job counts are aggregated server-side.
func NewCustomerView(org domain.Organization) CustomerView {
	return CustomerView{
		ID:        org.ID,
		Name:      org.Name,
		Email:     org.Email,
		Phone:     org.Phone,
		Address:   org.Address,
		City:      org.City,
		State:     org.State,
		Status:    "active",
		TotalJobs: 0,
		CreatedAt: org.CreatedAt,
	}
}

func nonNegative(v *float64) float64 {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}

// ---------- REQUESTS ----------

type CreateOrganizationRequest struct {
	Name           string `json:"name" validate:"required"`
	Relation       string `json:"relation"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	Website        string `json:"website"`
	Social         string `json:"social"`
	Notes          string `json:"notes"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Zip            string `json:"zip"`
	Country        string `json:"country"`
	Classification string `json:"classification" validate:"omitempty,oneof=associate customer"`
}
