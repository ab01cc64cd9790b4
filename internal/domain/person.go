package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Person is a contact. OrganizationID is a display back-reference, not
// ownership: people remain scoped to their owning user.
type Person struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36"`
	UserID         string    `json:"user_id" gorm:"size:36;index"`
	FirstName      string    `json:"first_name" validate:"required"`
	LastName       string    `json:"last_name"`
	Title          string    `json:"title,omitempty"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Mobile         string    `json:"mobile,omitempty"`
	IsTechnician   bool      `json:"is_technician"`
	OrganizationID string    `json:"organization_id,omitempty" gorm:"size:36;index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (p *Person) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// FullName joins the name parts, tolerating a missing last name.
func (p *Person) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	if p.FirstName == "" {
		return p.LastName
	}
	return p.FirstName + " " + p.LastName
}
