package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kinesia-app/kinesia/domains/appointment"
)

type appointmentModel struct {
	ID        string    `gorm:"primaryKey"`
	OwnerID   string    `gorm:"index:idx_appointments_owner;not null"`
	ClientID  string    `gorm:"index:idx_appointments_client;not null"`
	Title     string
	StartsAt  time.Time `gorm:"index:idx_appointments_starts;not null"`
	EndsAt    time.Time `gorm:"not null"`
	Status    string    `gorm:"default:'scheduled'"`
	Notes     string
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (appointmentModel) TableName() string {
	return "appointments"
}

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) InitSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&appointmentModel{})
}

func (r *AppointmentGormRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	if a.Status == "" {
		a.Status = appointment.StatusScheduled
	}

	m := toAppointmentModel(a)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *AppointmentGormRepository) ListByOwner(ctx context.Context, ownerID string) ([]appointment.Appointment, error) {
	var models []appointmentModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("starts_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return fromAppointmentModels(models), nil
}

func (r *AppointmentGormRepository) ListBetween(ctx context.Context, ownerID string, from, to time.Time) ([]appointment.Appointment, error) {
	var models []appointmentModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND starts_at >= ? AND starts_at < ?", ownerID, from, to).
		Order("starts_at").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return fromAppointmentModels(models), nil
}

func (r *AppointmentGormRepository) GetByID(ctx context.Context, ownerID, id string) (*appointment.Appointment, error) {
	var m appointmentModel
	err := r.db.WithContext(ctx).First(&m, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appointment.ErrAppointmentNotFound
		}
		return nil, err
	}
	a := fromAppointmentModel(m)
	return &a, nil
}

func (r *AppointmentGormRepository) Update(ctx context.Context, a *appointment.Appointment) error {
	a.UpdatedAt = time.Now()
	m := toAppointmentModel(a)

	result := r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("id = ? AND owner_id = ?", a.ID, a.OwnerID).
		Select("*").Omit("id", "owner_id", "created_at").
		Updates(&m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appointment.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, ownerID, id string) error {
	result := r.db.WithContext(ctx).
		Delete(&appointmentModel{}, "id = ? AND owner_id = ?", id, ownerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appointment.ErrAppointmentNotFound
	}
	return nil
}

func toAppointmentModel(a *appointment.Appointment) appointmentModel {
	return appointmentModel{
		ID:        a.ID,
		OwnerID:   a.OwnerID,
		ClientID:  a.ClientID,
		Title:     a.Title,
		StartsAt:  a.StartsAt,
		EndsAt:    a.EndsAt,
		Status:    string(a.Status),
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func fromAppointmentModel(m appointmentModel) appointment.Appointment {
	return appointment.Appointment{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		ClientID:  m.ClientID,
		Title:     m.Title,
		StartsAt:  m.StartsAt,
		EndsAt:    m.EndsAt,
		Status:    appointment.Status(m.Status),
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromAppointmentModels(models []appointmentModel) []appointment.Appointment {
	out := make([]appointment.Appointment, 0, len(models))
	for _, m := range models {
		out = append(out, fromAppointmentModel(m))
	}
	return out
}
