package jobs

import (
	"testing"

	"fieldops/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNewJobView_NullJoinsMapToEmptyStrings(t *testing.T) {
	view := NewJobView(domain.Job{
		ID:       "j1",
		Title:    "Rooftop unit replacement",
		Status:   domain.JobStatusNew,
		Priority: domain.JobPriorityMedium,
	})

	assert.Equal(t, "", view.CustomerName)
	assert.Equal(t, "", view.OrganizationName)
	assert.Equal(t, "", view.AssignedPersonName)
}

func TestNewJobView_SequencesNeverNil(t *testing.T) {
	view := NewJobView(domain.Job{ID: "j1"})

	assert.NotNil(t, view.Tags)
	assert.NotNil(t, view.AssignedTechs)
	assert.NotNil(t, view.Tasks)
	assert.NotNil(t, view.Timeline)
	assert.Empty(t, view.Tasks, "tasks have no backing join yet")
	assert.Empty(t, view.Timeline, "timeline has no backing join yet")
}

func TestNewJobView_JoinedNamesResolved(t *testing.T) {
	view := NewJobView(domain.Job{
		ID:       "j1",
		Customer: &domain.Organization{ID: "c1", Name: "Northside"},
		Organization: &domain.Organization{
			ID: "o1", Name: "Acme",
		},
		Person: &domain.Person{FirstName: "Jordan", LastName: "Reyes"},
	})

	assert.Equal(t, "Northside", view.CustomerName)
	assert.Equal(t, "Acme", view.OrganizationName)
	assert.Equal(t, "Jordan Reyes", view.AssignedPersonName)
}

func TestNewJobView_PreservesIdentityAndRefs(t *testing.T) {
	job := domain.Job{
		ID:             "j1",
		UserID:         "u1",
		CustomerID:     "c1",
		OrganizationID: "o1",
		PersonID:       "p1",
		Tags:           []string{"hvac"},
	}

	view := NewJobView(job)

	assert.Equal(t, job.ID, view.ID)
	assert.Equal(t, job.CustomerID, view.CustomerID)
	assert.Equal(t, job.OrganizationID, view.OrganizationID)
	assert.Equal(t, job.PersonID, view.PersonID)
	assert.Equal(t, []string{"hvac"}, view.Tags)
}
