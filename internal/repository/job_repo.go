package repository

import (
	"context"

	"fieldops/internal/domain"

	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// GetByUser returns the user's jobs with the customer, organization and
// assigned-person embeds preloaded.
func (r *JobRepository) GetByUser(ctx context.Context, userID string) ([]domain.Job, error) {
	var jobs []domain.Job

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Customer").
		Preload("Organization").
		Preload("Person").
		Find(&jobs).Error

	return jobs, err
}

// GetByID fetches one job scoped to its owner.
func (r *JobRepository) GetByID(ctx context.Context, userID, id string) (*domain.Job, error) {
	var job domain.Job

	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Preload("Customer").
		Preload("Organization").
		Preload("Person").
		First(&job).Error

	if err != nil {
		return nil, err
	}

	return &job, nil
}

// Create inserts a new job.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// Reload refetches a job with embeds after an insert so the persisted
// record can be echoed back with display joins resolved.
func (r *JobRepository) Reload(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Organization").
		Preload("Person").
		First(job, "id = ?", job.ID).Error
}
