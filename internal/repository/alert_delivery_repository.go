package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"statusping/internal/model"
)

type AlertDeliveryRepository interface {
	CreateAlertDelivery(ctx context.Context, delivery model.AlertDelivery) (model.AlertDelivery, error)
	AlertDeliveryExists(ctx context.Context, incidentId string, kind string, channel string) (bool, error)
}

type alertDeliveryRepository struct {
	db *gorm.DB
}

// CreateAlertDelivery inserts with ON CONFLICT DO NOTHING: if two dispatch
// paths race on the same (incident, kind, channel), the loser's row is simply
// discarded and the alert stays recorded exactly once.
func (a *alertDeliveryRepository) CreateAlertDelivery(ctx context.Context, delivery model.AlertDelivery) (model.AlertDelivery, error) {
	if delivery.ID == "" {
		delivery.ID = uuid.NewString()
	}
	result := a.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&delivery)
	if result.Error != nil {
		return delivery, fmt.Errorf("AlertDeliveryRepository.CreateAlertDelivery: %w", result.Error)
	}
	return delivery, nil
}

func (a *alertDeliveryRepository) AlertDeliveryExists(ctx context.Context, incidentId string, kind string, channel string) (bool, error) {
	var count int64
	result := a.db.WithContext(ctx).Model(&model.AlertDelivery{}).
		Where("incident_id = ? AND kind = ? AND channel = ?", incidentId, kind, channel).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("AlertDeliveryRepository.AlertDeliveryExists: %w", result.Error)
	}
	return count > 0, nil
}

func NewAlertDeliveryRepository(db *gorm.DB) AlertDeliveryRepository {
	return &alertDeliveryRepository{
		db: db,
	}
}
