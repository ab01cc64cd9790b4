package jobs

import (
	"context"
	"time"

	"fieldops/internal/domain"
	"fieldops/internal/querycache"
	"fieldops/internal/repository"
)

// ChangeNotifier fans out entity-change notifications after writes.
type ChangeNotifier interface {
	NotifyChanged(userID, entity, action, id string)
}

type Service struct {
	jobRepo  *repository.JobRepository
	notifier ChangeNotifier

	cache *querycache.Store[[]JobView]
}

func NewService(jobRepo *repository.JobRepository, notifier ChangeNotifier, cacheTTL, fetchTimeout time.Duration) *Service {
	return &Service{
		jobRepo:  jobRepo,
		notifier: notifier,
		cache:    querycache.New[[]JobView](cacheTTL, fetchTimeout),
	}
}

// Jobs lists the principal's jobs with display joins resolved.
func (s *Service) Jobs(ctx context.Context, userID string, refresh bool) ([]JobView, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	key := "jobs:" + userID
	if refresh {
		s.cache.Invalidate(key)
	}

	return s.cache.Get(ctx, key, func(fctx context.Context) ([]JobView, error) {
		rows, err := s.jobRepo.GetByUser(fctx, userID)
		if err != nil {
			return nil, err
		}

		views := make([]JobView, 0, len(rows))
		for _, row := range rows {
			views = append(views, NewJobView(row))
		}
		return views, nil
	})
}

// CreateJob inserts a job for the principal and echoes back the persisted
// view with joins resolved. Cached job listings are left alone; callers
// refetch on their own schedule.
func (s *Service) CreateJob(ctx context.Context, userID string, req CreateJobRequest) (*JobView, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	status := domain.JobStatus(req.Status)
	if status == "" {
		status = domain.JobStatusNew
	}
	if !domain.ValidJobStatus(status) {
		return nil, ErrInvalidStatus
	}

	priority := domain.JobPriority(req.Priority)
	if priority == "" {
		priority = domain.JobPriorityMedium
	}
	if !domain.ValidJobPriority(priority) {
		return nil, ErrInvalidPriority
	}

	job := &domain.Job{
		UserID:         userID,
		Title:          req.Title,
		Description:    req.Description,
		Phase:          req.Phase,
		Status:         status,
		Priority:       priority,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		CustomerID:     req.CustomerID,
		OrganizationID: req.OrganizationID,
		PersonID:       req.PersonID,
		Tags:           req.Tags,
		AssignedTechs:  req.AssignedTechs,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	// Pick up the display joins for the echo.
	if err := s.jobRepo.Reload(ctx, job); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyChanged(userID, "jobs", "created", job.ID)
	}

	view := NewJobView(*job)
	return &view, nil
}
