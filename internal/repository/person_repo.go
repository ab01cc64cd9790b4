package repository

import (
	"context"

	"fieldops/internal/domain"

	"gorm.io/gorm"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// GetByUser returns the user's people. The organization back-reference is
// an id only; display lookups resolve it against the organization list.
func (r *PersonRepository) GetByUser(ctx context.Context, userID string) ([]domain.Person, error) {
	var people []domain.Person

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&people).Error

	return people, err
}

// GetByID fetches one person scoped to its owner.
func (r *PersonRepository) GetByID(ctx context.Context, userID, id string) (*domain.Person, error) {
	var person domain.Person

	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&person).Error

	if err != nil {
		return nil, err
	}

	return &person, nil
}

// Create inserts a new person.
func (r *PersonRepository) Create(ctx context.Context, person *domain.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}
