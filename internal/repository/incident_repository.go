package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "statusping/internal/errors"
	"statusping/internal/model"
)

type IncidentRepository interface {
	CreateIncident(ctx context.Context, incident model.Incident) (model.Incident, error)
	GetOpenIncident(ctx context.Context, monitorId string) (*model.Incident, error)
	GetIncidents(ctx context.Context, monitorId string, limit int, offset int) ([]model.Incident, error)
	ResolveIncident(ctx context.Context, incidentId string, resolvedAt time.Time) (model.Incident, error)
	ResolveOpenIncidents(ctx context.Context, monitorId string, resolvedAt time.Time) (int64, error)
}

type incidentRepository struct {
	db *gorm.DB
}

func (i *incidentRepository) CreateIncident(ctx context.Context, incident model.Incident) (model.Incident, error) {
	if incident.ID == "" {
		incident.ID = uuid.NewString()
	}
	result := i.db.WithContext(ctx).Create(&incident)
	if result.Error != nil {
		return incident, fmt.Errorf("IncidentRepository.CreateIncident: %w", result.Error)
	}
	return incident, nil
}

// GetOpenIncident returns nil when the monitor has no open incident.
func (i *incidentRepository) GetOpenIncident(ctx context.Context, monitorId string) (*model.Incident, error) {
	var incident model.Incident
	result := i.db.WithContext(ctx).Where("monitor_id = ? AND resolved_at IS NULL", monitorId).First(&incident)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("IncidentRepository.GetOpenIncident: %w", result.Error)
	}
	return &incident, nil
}

func (i *incidentRepository) GetIncidents(ctx context.Context, monitorId string, limit int, offset int) ([]model.Incident, error) {
	var incidents []model.Incident
	result := i.db.WithContext(ctx).Where("monitor_id = ?", monitorId).Order("started_at desc").Limit(limit).Offset(offset).Find(&incidents)
	if result.Error != nil {
		return nil, fmt.Errorf("IncidentRepository.GetIncidents: %w", result.Error)
	}
	return incidents, nil
}

func (i *incidentRepository) ResolveIncident(ctx context.Context, incidentId string, resolvedAt time.Time) (model.Incident, error) {
	var incident model.Incident
	result := i.db.WithContext(ctx).Model(&incident).Clauses(clause.Returning{}).Where("id = ? AND resolved_at IS NULL", incidentId).Update("resolved_at", resolvedAt)
	if result.Error != nil {
		return incident, fmt.Errorf("IncidentRepository.ResolveIncident: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return incident, fmt.Errorf("IncidentRepository.ResolveIncident: %w", apperrors.ErrNoOpenIncident)
	}
	return incident, nil
}

// ResolveOpenIncidents closes every open incident for a monitor. The detector
// uses it as a sweep on up transitions so a duplicate open row from a crashed
// run cannot stay open forever.
func (i *incidentRepository) ResolveOpenIncidents(ctx context.Context, monitorId string, resolvedAt time.Time) (int64, error) {
	result := i.db.WithContext(ctx).Model(&model.Incident{}).Where("monitor_id = ? AND resolved_at IS NULL", monitorId).Update("resolved_at", resolvedAt)
	if result.Error != nil {
		return 0, fmt.Errorf("IncidentRepository.ResolveOpenIncidents: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func NewIncidentRepository(db *gorm.DB) IncidentRepository {
	return &incidentRepository{
		db: db,
	}
}
