package repository

import (
	"context"

	"fieldops/internal/domain"

	"gorm.io/gorm"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// GetByUser returns every organization owned by userID. Ordering is
// whatever the store returns; callers must not rely on it.
func (r *OrganizationRepository) GetByUser(ctx context.Context, userID string) ([]domain.Organization, error) {
	var orgs []domain.Organization

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&orgs).Error

	return orgs, err
}

// GetByClassification returns the user's organizations in one display
// context, with the associate profile embed preloaded.
func (r *OrganizationRepository) GetByClassification(
	ctx context.Context,
	userID string,
	classification domain.Classification,
) ([]domain.Organization, error) {

	var orgs []domain.Organization

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND classification = ?", userID, classification).
		Preload("Associates").
		Find(&orgs).Error

	return orgs, err
}

// GetByID fetches one organization scoped to its owner.
func (r *OrganizationRepository) GetByID(ctx context.Context, userID, id string) (*domain.Organization, error) {
	var org domain.Organization

	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Preload("Associates").
		First(&org).Error

	if err != nil {
		return nil, err
	}

	return &org, nil
}

// Create inserts a new organization.
func (r *OrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

// Update persists changes to an existing organization.
func (r *OrganizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}
