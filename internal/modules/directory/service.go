package directory

import (
	"context"
	"time"

	"fieldops/internal/domain"
	"fieldops/internal/querycache"
	"fieldops/internal/repository"
)

// Service owns the organization directories: raw rows come from the
// repository, view-model constructors normalize them, and per-user cache
// keys make repeated reads free until invalidated.
type Service struct {
	orgRepo  *repository.OrganizationRepository
	notifier ChangeNotifier

	orgs       *querycache.Store[[]OrganizationView]
	associates *querycache.Store[[]AssociateView]
	customers  *querycache.Store[[]CustomerView]
}

func NewService(
	orgRepo *repository.OrganizationRepository,
	notifier ChangeNotifier,
	cacheTTL, fetchTimeout time.Duration,
) *Service {
	return &Service{
		orgRepo:    orgRepo,
		notifier:   notifier,
		orgs:       querycache.New[[]OrganizationView](cacheTTL, fetchTimeout),
		associates: querycache.New[[]AssociateView](cacheTTL, fetchTimeout),
		customers:  querycache.New[[]CustomerView](cacheTTL, fetchTimeout),
	}
}

// Organizations lists every organization the principal owns.
func (s *Service) Organizations(ctx context.Context, userID string, refresh bool) ([]OrganizationView, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	key := "organizations:" + userID
	if refresh {
		s.orgs.Invalidate(key)
	}

	return s.orgs.Get(ctx, key, func(fctx context.Context) ([]OrganizationView, error) {
		rows, err := s.orgRepo.GetByUser(fctx, userID)
		if err != nil {
			return nil, err
		}

		views := make([]OrganizationView, 0, len(rows))
		for _, row := range rows {
			views = append(views, NewOrganizationView(row))
		}
		return views, nil
	})
}

// Associates lists the associate directory: organizations classified as
// associate, merged with their profile embed. Unclassified organizations
// never show up here.
func (s *Service) Associates(ctx context.Context, userID string, refresh bool) ([]AssociateView, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	key := "associates:" + userID
	if refresh {
		s.associates.Invalidate(key)
	}

	return s.associates.Get(ctx, key, func(fctx context.Context) ([]AssociateView, error) {
		rows, err := s.orgRepo.GetByClassification(fctx, userID, domain.ClassificationAssociate)
		if err != nil {
			return nil, err
		}

		views := make([]AssociateView, 0, len(rows))
		for _, row := range rows {
			views = append(views, NewAssociateView(row))
		}
		return views, nil
	})
}

// Customers lists the customer directory.
func (s *Service) Customers(ctx context.Context, userID string, refresh bool) ([]CustomerView, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	key := "customers:" + userID
	if refresh {
		s.customers.Invalidate(key)
	}

	return s.customers.Get(ctx, key, func(fctx context.Context) ([]CustomerView, error) {
		rows, err := s.orgRepo.GetByClassification(fctx, userID, domain.ClassificationCustomer)
		if err != nil {
			return nil, err
		}

		views := make([]CustomerView, 0, len(rows))
		for _, row := range rows {
			views = append(views, NewCustomerView(row))
		}
		return views, nil
	})
}

// CreateOrganization inserts a new organization for the principal and
// returns the persisted view. It does not invalidate cached listings:
// refreshing after a write is the caller's move (refresh=true on the next
// list, or reacting to the change notification).
func (s *Service) CreateOrganization(ctx context.Context, userID string, req CreateOrganizationRequest) (*OrganizationView, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	classification := domain.Classification(req.Classification)
	switch classification {
	case "", domain.ClassificationAssociate, domain.ClassificationCustomer:
	default:
		return nil, ErrInvalidClassification
	}

	org := &domain.Organization{
		UserID:         userID,
		Name:           req.Name,
		Relation:       req.Relation,
		Email:          req.Email,
		Phone:          req.Phone,
		Website:        req.Website,
		Social:         req.Social,
		Notes:          req.Notes,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		Zip:            req.Zip,
		Country:        req.Country,
		Classification: classification,
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyChanged(userID, "organizations", "created", org.ID)
	}

	view := NewOrganizationView(*org)
	return &view, nil
}
