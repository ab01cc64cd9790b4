package directory

import (
	"context"
	"testing"
	"time"

	"fieldops/internal/database"
	"fieldops/internal/domain"
	"fieldops/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingNotifier struct {
	changes []string
}

func (n *recordingNotifier) NotifyChanged(userID, entity, action, id string) {
	n.changes = append(n.changes, entity+":"+action)
}

func setupService(t *testing.T) (*Service, *gorm.DB, *recordingNotifier) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Organization{}, &domain.AssociateProfile{}))

	notifier := &recordingNotifier{}
	service := NewService(repository.NewOrganizationRepository(db), notifier, 0, time.Second)
	return service, db, notifier
}

func TestService_Associates_ScopedToPrincipal(t *testing.T) {
	service, db, _ := setupService(t)

	require.NoError(t, db.Create(&domain.Organization{
		UserID:         "u1",
		Name:           "Mine",
		Classification: domain.ClassificationAssociate,
	}).Error)
	require.NoError(t, db.Create(&domain.Organization{
		UserID:         "u2",
		Name:           "Theirs",
		Classification: domain.ClassificationAssociate,
	}).Error)

	views, err := service.Associates(context.Background(), "u1", false)
	require.NoError(t, err)

	require.Len(t, views, 1)
	assert.Equal(t, "Mine", views[0].Name)
}

func TestService_UnclassifiedAppearsInNeitherDirectory(t *testing.T) {
	service, db, _ := setupService(t)

	require.NoError(t, db.Create(&domain.Organization{
		UserID: "u1",
		Name:   "Paper Trail LLC",
	}).Error)

	associates, err := service.Associates(context.Background(), "u1", false)
	require.NoError(t, err)
	assert.Empty(t, associates)

	customers, err := service.Customers(context.Background(), "u1", false)
	require.NoError(t, err)
	assert.Empty(t, customers)

	orgs, err := service.Organizations(context.Background(), "u1", false)
	require.NoError(t, err)
	assert.Len(t, orgs, 1)
}

func TestService_EmptyPrincipalFailsClosed(t *testing.T) {
	service, _, _ := setupService(t)

	_, err := service.Organizations(context.Background(), "", false)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = service.CreateOrganization(context.Background(), "", CreateOrganizationRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestService_CreateOrganization_RejectsUnknownClassification(t *testing.T) {
	service, _, _ := setupService(t)

	_, err := service.CreateOrganization(context.Background(), "u1", CreateOrganizationRequest{
		Name:           "Acme",
		Classification: "supplier",
	})
	assert.ErrorIs(t, err, ErrInvalidClassification)
}

func TestService_CreateOrganization_DuplicateNamePerUserConflicts(t *testing.T) {
	service, _, _ := setupService(t)
	ctx := context.Background()

	_, err := service.CreateOrganization(ctx, "u1", CreateOrganizationRequest{Name: "Acme"})
	require.NoError(t, err)

	_, err = service.CreateOrganization(ctx, "u1", CreateOrganizationRequest{Name: "Acme"})
	assert.ErrorIs(t, err, ErrDuplicateName)

	// Names are only unique within one principal's workspace.
	_, err = service.CreateOrganization(ctx, "u2", CreateOrganizationRequest{Name: "Acme"})
	assert.NoError(t, err)
}

func TestService_CreateOrganization_NotifiesButLeavesCacheAlone(t *testing.T) {
	service, _, notifier := setupService(t)
	ctx := context.Background()

	before, err := service.Customers(ctx, "u1", false)
	require.NoError(t, err)
	require.Empty(t, before)

	created, err := service.CreateOrganization(ctx, "u1", CreateOrganizationRequest{
		Name:           "Northside",
		Classification: "customer",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{"organizations:created"}, notifier.changes)

	// The cached listing stays stale until the caller asks for a refresh.
	stale, err := service.Customers(ctx, "u1", false)
	require.NoError(t, err)
	assert.Empty(t, stale)

	fresh, err := service.Customers(ctx, "u1", true)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, "Northside", fresh[0].Name)
}

func TestService_Associates_EmbedMerged(t *testing.T) {
	service, db, _ := setupService(t)

	rating := 4.5
	require.NoError(t, db.Create(&domain.Organization{
		ID:             "o1",
		UserID:         "u1",
		Name:           "Acme",
		Classification: domain.ClassificationAssociate,
		Associates: []domain.AssociateProfile{
			{ID: "a1", Rating: &rating},
		},
	}).Error)

	views, err := service.Associates(context.Background(), "u1", false)
	require.NoError(t, err)

	require.Len(t, views, 1)
	assert.Equal(t, "a1", views[0].ID)
	assert.Equal(t, "Acme", views[0].Name)
	assert.Equal(t, 4.5, views[0].Rating)
	assert.Equal(t, 0.0, views[0].HourlyRate)
}
