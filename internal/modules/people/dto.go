package people

import (
	"time"

	"fieldops/internal/domain"
	"fieldops/internal/modules/directory"
)

type PersonView struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	FullName     string `json:"full_name"`
	Title        string `json:"title,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Mobile       string `json:"mobile,omitempty"`
	IsTechnician bool   `json:"is_technician"`

	OrganizationID          string    `json:"organization_id,omitempty"`
	OrganizationName        string    `json:"organization_name"`
	OrganizationIsAssociate bool      `json:"organization_is_associate"`
	CreatedAt               time.Time `json:"created_at"`
}

// NewPersonView resolves the organization back-reference once, here.
// Dangling or absent references map to an empty name.
func NewPersonView(p domain.Person, orgs directory.Lookup) PersonView {
	view := PersonView{
		ID:             p.ID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		FullName:       p.FullName(),
		Title:          p.Title,
		Email:          p.Email,
		Phone:          p.Phone,
		Mobile:         p.Mobile,
		IsTechnician:   p.IsTechnician,
		OrganizationID: p.OrganizationID,
		CreatedAt:      p.CreatedAt,
	}

	if p.OrganizationID != "" {
		view.OrganizationName = orgs.Name(p.OrganizationID)
		if c := orgs.Classification(p.OrganizationID); c != nil {
			view.OrganizationIsAssociate = *c == domain.ClassificationAssociate
		}
	}

	return view
}

type CreatePersonRequest struct {
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name"`
	Title          string `json:"title"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	Mobile         string `json:"mobile"`
	IsTechnician   bool   `json:"is_technician"`
	OrganizationID string `json:"organization_id"`
}
