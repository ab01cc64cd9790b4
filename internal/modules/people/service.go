package people

import (
	"context"
	"errors"
	"time"

	"fieldops/internal/domain"
	"fieldops/internal/modules/directory"
	"fieldops/internal/querycache"
	"fieldops/internal/repository"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// ChangeNotifier fans out entity-change notifications after writes.
type ChangeNotifier interface {
	NotifyChanged(userID, entity, action, id string)
}

type Service struct {
	personRepo *repository.PersonRepository
	orgRepo    *repository.OrganizationRepository
	notifier   ChangeNotifier

	cache *querycache.Store[[]PersonView]
}

func NewService(
	personRepo *repository.PersonRepository,
	orgRepo *repository.OrganizationRepository,
	notifier ChangeNotifier,
	cacheTTL, fetchTimeout time.Duration,
) *Service {
	return &Service{
		personRepo: personRepo,
		orgRepo:    orgRepo,
		notifier:   notifier,
		cache:      querycache.New[[]PersonView](cacheTTL, fetchTimeout),
	}
}

// People lists the principal's contacts with organization names resolved
// against the principal's own organizations.
func (s *Service) People(ctx context.Context, userID string, refresh bool) ([]PersonView, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	key := "people:" + userID
	if refresh {
		s.cache.Invalidate(key)
	}

	return s.cache.Get(ctx, key, func(fctx context.Context) ([]PersonView, error) {
		rows, err := s.personRepo.GetByUser(fctx, userID)
		if err != nil {
			return nil, err
		}

		orgRows, err := s.orgRepo.GetByUser(fctx, userID)
		if err != nil {
			return nil, err
		}

		orgViews := make([]directory.OrganizationView, 0, len(orgRows))
		for _, org := range orgRows {
			orgViews = append(orgViews, directory.NewOrganizationView(org))
		}
		lookup := directory.NewLookup(orgViews)

		views := make([]PersonView, 0, len(rows))
		for _, row := range rows {
			views = append(views, NewPersonView(row, lookup))
		}
		return views, nil
	})
}

// CreatePerson inserts a contact for the principal. Cached listings are
// not invalidated here; callers refetch.
func (s *Service) CreatePerson(ctx context.Context, userID string, req CreatePersonRequest) (*PersonView, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	person := &domain.Person{
		UserID:         userID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Title:          req.Title,
		Email:          req.Email,
		Phone:          req.Phone,
		Mobile:         req.Mobile,
		IsTechnician:   req.IsTechnician,
		OrganizationID: req.OrganizationID,
	}

	if err := s.personRepo.Create(ctx, person); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyChanged(userID, "people", "created", person.ID)
	}

	lookup := directory.Lookup{}
	if person.OrganizationID != "" {
		if org, err := s.orgRepo.GetByID(ctx, userID, person.OrganizationID); err == nil {
			lookup = directory.NewLookup([]directory.OrganizationView{directory.NewOrganizationView(*org)})
		}
	}

	view := NewPersonView(*person, lookup)
	return &view, nil
}
