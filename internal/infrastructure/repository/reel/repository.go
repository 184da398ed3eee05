package reel

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "samadhan-setu/services/reel-api/internal/domain/reel"
	"samadhan-setu/services/reel-api/internal/infrastructure/database/entities"
	"samadhan-setu/services/reel-api/utils/reelid"
)

// Repository handles reel persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a placeholder row and assigns the record identifier.
// The video column always starts empty; it is set exactly once by
// SetVideoURL when the upload is reconciled.
func (r *Repository) Create(ctx context.Context, rec *domain.Reel) error {
	entity := entities.Reel{
		ID:          reelid.New(),
		Title:       rec.Title,
		Description: rec.Description,
		SubmittedBy: rec.SubmittedBy,
		VideoURL:    "",
		Status:      domain.StatusPending,
	}
	if err := r.db.WithContext(ctx).Create(&entity).Error; err != nil {
		return fmt.Errorf("insert reel: %w", err)
	}

	rec.ID = entity.ID
	rec.VideoURL = ""
	rec.Status = entity.Status
	rec.CreatedAt = entity.CreatedAt
	rec.UpdatedAt = entity.UpdatedAt
	return nil
}

// SetVideoURL finalizes a placeholder: the video column and the status
// flip together, so a row is "published" only when its URL is set.
func (r *Repository) SetVideoURL(ctx context.Context, id, url string) error {
	tx := r.db.WithContext(ctx).
		Model(&entities.Reel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"video":  url,
			"status": domain.StatusPublished,
		})
	if tx.Error != nil {
		return fmt.Errorf("update reel %s: %w", id, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("update reel %s: no such record", id)
	}
	return nil
}

// GetByID returns one reel, or nil when the id is unknown.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reel, error) {
	var entity entities.Reel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reel %s: %w", id, err)
	}
	rec := mapEntity(entity)
	return &rec, nil
}

// List returns the newest reels first.
func (r *Repository) List(ctx context.Context, limit int) ([]domain.Reel, error) {
	var rows []entities.Reel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list reels: %w", err)
	}

	out := make([]domain.Reel, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapEntity(row))
	}
	return out, nil
}

func mapEntity(entity entities.Reel) domain.Reel {
	return domain.Reel{
		ID:          entity.ID,
		Title:       entity.Title,
		Description: entity.Description,
		SubmittedBy: entity.SubmittedBy,
		VideoURL:    entity.VideoURL,
		Status:      entity.Status,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}
