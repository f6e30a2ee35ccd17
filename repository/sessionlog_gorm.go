package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kinesia-app/kinesia/domains/sessionlog"
)

type sessionLogModel struct {
	ID            string    `gorm:"primaryKey"`
	OwnerID       string    `gorm:"index:idx_session_logs_owner;not null"`
	AppointmentID string    `gorm:"index:idx_session_logs_appointment;not null"`
	Entry         string    `gorm:"type:text"`
	ModeIDs       string    `gorm:"type:text;default:'[]'"` // JSON
	MuscleIDs     string    `gorm:"type:text;default:'[]'"` // JSON
	ChakraIDs     string    `gorm:"type:text;default:'[]'"` // JSON
	ChannelIDs    string    `gorm:"type:text;default:'[]'"` // JSON
	AcupointIDs   string    `gorm:"type:text;default:'[]'"` // JSON
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (sessionLogModel) TableName() string {
	return "session_logs"
}

type SessionLogGormRepository struct {
	db *gorm.DB
}

func NewSessionLogGormRepository(db *gorm.DB) *SessionLogGormRepository {
	return &SessionLogGormRepository{db: db}
}

func (r *SessionLogGormRepository) InitSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&sessionLogModel{})
}

func (r *SessionLogGormRepository) Create(ctx context.Context, l *sessionlog.Log) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	now := time.Now()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	l.UpdatedAt = now

	m, err := toSessionLogModel(l)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *SessionLogGormRepository) ListByAppointment(ctx context.Context, ownerID, appointmentID string) ([]sessionlog.Log, error) {
	var models []sessionLogModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND appointment_id = ?", ownerID, appointmentID).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	logs := make([]sessionlog.Log, 0, len(models))
	for _, m := range models {
		l, err := fromSessionLogModel(m)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, nil
}

func (r *SessionLogGormRepository) GetByID(ctx context.Context, ownerID, id string) (*sessionlog.Log, error) {
	var m sessionLogModel
	err := r.db.WithContext(ctx).First(&m, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, sessionlog.ErrLogNotFound
		}
		return nil, err
	}
	l, err := fromSessionLogModel(m)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *SessionLogGormRepository) Update(ctx context.Context, l *sessionlog.Log) error {
	l.UpdatedAt = time.Now()
	m, err := toSessionLogModel(l)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&sessionLogModel{}).
		Where("id = ? AND owner_id = ?", l.ID, l.OwnerID).
		Select("*").Omit("id", "owner_id", "created_at").
		Updates(&m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return sessionlog.ErrLogNotFound
	}
	return nil
}

func (r *SessionLogGormRepository) Delete(ctx context.Context, ownerID, id string) error {
	result := r.db.WithContext(ctx).
		Delete(&sessionLogModel{}, "id = ? AND owner_id = ?", id, ownerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return sessionlog.ErrLogNotFound
	}
	return nil
}

func toSessionLogModel(l *sessionlog.Log) (sessionLogModel, error) {
	m := sessionLogModel{
		ID:            l.ID,
		OwnerID:       l.OwnerID,
		AppointmentID: l.AppointmentID,
		Entry:         l.Entry,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}

	for _, pair := range []struct {
		ids []string
		dst *string
	}{
		{l.ModeIDs, &m.ModeIDs},
		{l.MuscleIDs, &m.MuscleIDs},
		{l.ChakraIDs, &m.ChakraIDs},
		{l.ChannelIDs, &m.ChannelIDs},
		{l.AcupointIDs, &m.AcupointIDs},
	} {
		data, err := json.Marshal(emptyIfNil(pair.ids))
		if err != nil {
			return sessionLogModel{}, err
		}
		*pair.dst = string(data)
	}
	return m, nil
}

func fromSessionLogModel(m sessionLogModel) (sessionlog.Log, error) {
	l := sessionlog.Log{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		AppointmentID: m.AppointmentID,
		Entry:         m.Entry,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	for _, pair := range []struct {
		raw string
		dst *[]string
	}{
		{m.ModeIDs, &l.ModeIDs},
		{m.MuscleIDs, &l.MuscleIDs},
		{m.ChakraIDs, &l.ChakraIDs},
		{m.ChannelIDs, &l.ChannelIDs},
		{m.AcupointIDs, &l.AcupointIDs},
	} {
		if pair.raw == "" {
			continue
		}
		if err := json.Unmarshal([]byte(pair.raw), pair.dst); err != nil {
			return sessionlog.Log{}, err
		}
	}
	return l, nil
}

func emptyIfNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
