package e2e

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"fieldops/internal/database"
	"fieldops/internal/domain"
	"fieldops/internal/middleware"
	"fieldops/internal/modules/directory"
	"fieldops/internal/modules/events"
	"fieldops/internal/modules/jobs"
	"fieldops/internal/modules/people"
	jwtsvc "fieldops/internal/pkg/jwt"
	"fieldops/internal/repository"
	"fieldops/pkg/client"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type suite struct {
	server *httptest.Server
	db     *gorm.DB
	client *client.Client
	userID string
}

func setupSuite(t *testing.T) *suite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Organization{},
		&domain.AssociateProfile{},
		&domain.Person{},
		&domain.Job{},
	))

	orgRepo := repository.NewOrganizationRepository(db)
	personRepo := repository.NewPersonRepository(db)
	jobRepo := repository.NewJobRepository(db)

	j := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)
	hub := events.NewHub()

	directoryHandler := directory.NewHandler(directory.NewService(orgRepo, hub, 0, 5*time.Second))
	peopleHandler := people.NewHandler(people.NewService(personRepo, orgRepo, hub, 0, 5*time.Second))
	jobsHandler := jobs.NewHandler(jobs.NewService(jobRepo, hub, 0, 5*time.Second))

	router := gin.New()
	v1 := router.Group("/api/v1")
	protected := v1.Group("/")
	protected.Use(middleware.Auth(j))
	directoryHandler.RegisterRoutes(protected)
	peopleHandler.RegisterRoutes(protected)
	jobsHandler.RegisterRoutes(protected)

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		hub.Close()
	})

	user := &domain.User{Email: "e2e@fieldops.local", Name: "E2E", Role: domain.RoleMember}
	require.NoError(t, db.Create(user).Error)

	token, err := j.GenerateToken(user.ID, string(user.Role))
	require.NoError(t, err)

	return &suite{
		server: server,
		db:     db,
		client: client.New(server.URL, token),
		userID: user.ID,
	}
}

func TestFullWorkflow(t *testing.T) {
	s := setupSuite(t)
	ctx := context.Background()

	// Create the two classified organizations through the API.
	associateOrg, err := s.client.CreateOrganization(ctx, client.CreateOrganizationRequest{
		Name:           "Acme Mechanical",
		Classification: "associate",
		City:           "Springfield",
	})
	require.NoError(t, err)
	require.NotEmpty(t, associateOrg.ID)

	customerOrg, err := s.client.CreateOrganization(ctx, client.CreateOrganizationRequest{
		Name:           "Northside Property Group",
		Classification: "customer",
	})
	require.NoError(t, err)

	// The associate profile row comes from the backend, not the API.
	rating := 4.5
	require.NoError(t, s.db.Create(&domain.AssociateProfile{
		OrganizationID: associateOrg.ID,
		Rating:         &rating,
		Skills:         []string{"HVAC"},
	}).Error)

	// An unclassified organization must stay out of both directories.
	_, err = s.client.CreateOrganization(ctx, client.CreateOrganizationRequest{
		Name: "Paper Trail LLC",
	})
	require.NoError(t, err)

	associates, err := s.client.ListAssociates(ctx)
	require.NoError(t, err)
	require.Len(t, associates, 1)
	assert.Equal(t, "Acme Mechanical", associates[0].Name)
	assert.Equal(t, 4.5, associates[0].Rating)
	assert.Equal(t, 0.0, associates[0].HourlyRate)
	assert.Equal(t, "available", associates[0].Availability)
	assert.Equal(t, []string{"HVAC"}, associates[0].Skills)
	assert.NotNil(t, associates[0].Certifications)

	customers, err := s.client.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Northside Property Group", customers[0].Name)
	assert.Equal(t, "active", customers[0].Status)
	assert.Equal(t, 0, customers[0].TotalJobs)

	orgs, err := s.client.ListOrganizations(ctx)
	require.NoError(t, err)
	assert.Len(t, orgs, 3)

	// Wire a technician to the associate org and schedule a job.
	tech := &domain.Person{
		UserID:         s.userID,
		FirstName:      "Jordan",
		LastName:       "Reyes",
		IsTechnician:   true,
		OrganizationID: associateOrg.ID,
	}
	require.NoError(t, s.db.Create(tech).Error)

	job, err := s.client.CreateJob(ctx, client.CreateJobRequest{
		Title:          "Rooftop unit replacement",
		Priority:       "High",
		CustomerID:     customerOrg.ID,
		OrganizationID: associateOrg.ID,
		PersonID:       tech.ID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, "New", job.Status)
	assert.Equal(t, "Northside Property Group", job.CustomerName)
	assert.Equal(t, "Acme Mechanical", job.OrganizationName)
	assert.Equal(t, "Jordan Reyes", job.AssignedPersonName)

	jobList, err := s.client.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobList, 1)
	assert.Equal(t, job.ID, jobList[0].ID)

	peopleList, err := s.client.ListPeople(ctx)
	require.NoError(t, err)
	require.Len(t, peopleList, 1)
	assert.Equal(t, "Jordan Reyes", peopleList[0].FullName)
	assert.Equal(t, "Acme Mechanical", peopleList[0].OrganizationName)
	assert.True(t, peopleList[0].OrganizationIsAssociate)
}

func TestValidationErrorSurfacesMessage(t *testing.T) {
	s := setupSuite(t)

	_, err := s.client.CreateOrganization(context.Background(), client.CreateOrganizationRequest{})
	require.Error(t, err)
	assert.Equal(t, "name required", err.Error())
}

func TestTenantsDoNotLeak(t *testing.T) {
	s := setupSuite(t)
	ctx := context.Background()

	// A row owned by a different principal.
	require.NoError(t, s.db.Create(&domain.Organization{
		UserID:         "someone-else",
		Name:           "Not Yours",
		Classification: domain.ClassificationCustomer,
	}).Error)

	customers, err := s.client.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers)
}
