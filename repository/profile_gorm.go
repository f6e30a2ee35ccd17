package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kinesia-app/kinesia/domains/profile"
)

type practitionerModel struct {
	ID               string    `gorm:"primaryKey"`
	Email            string    `gorm:"uniqueIndex:idx_practitioners_email;not null"`
	PasswordHash     string    `gorm:"not null"`
	DisplayName      string
	PractitionerName string
	NotionDatabaseID string
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (practitionerModel) TableName() string {
	return "practitioners"
}

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

func (r *ProfileGormRepository) InitSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&practitionerModel{})
}

func (r *ProfileGormRepository) Create(ctx context.Context, p *profile.Practitioner, passwordHash string) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	m := practitionerModel{
		ID:               p.ID,
		Email:            p.Email,
		PasswordHash:     passwordHash,
		DisplayName:      p.DisplayName,
		PractitionerName: p.PractitionerName,
		NotionDatabaseID: p.NotionDatabaseID,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *ProfileGormRepository) GetByID(ctx context.Context, id string) (*profile.Practitioner, error) {
	var m practitionerModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, profile.ErrProfileNotFound
		}
		return nil, err
	}
	p := fromPractitionerModel(m)
	return &p, nil
}

func (r *ProfileGormRepository) GetByEmail(ctx context.Context, email string) (*profile.Practitioner, string, error) {
	var m practitionerModel
	err := r.db.WithContext(ctx).First(&m, "email = ?", email).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", profile.ErrProfileNotFound
		}
		return nil, "", err
	}
	p := fromPractitionerModel(m)
	return &p, m.PasswordHash, nil
}

func (r *ProfileGormRepository) Update(ctx context.Context, p *profile.Practitioner) error {
	p.UpdatedAt = time.Now()

	result := r.db.WithContext(ctx).
		Model(&practitionerModel{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"display_name":       p.DisplayName,
			"practitioner_name":  p.PractitionerName,
			"notion_database_id": p.NotionDatabaseID,
			"updated_at":         p.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return profile.ErrProfileNotFound
	}
	return nil
}

func fromPractitionerModel(m practitionerModel) profile.Practitioner {
	return profile.Practitioner{
		ID:               m.ID,
		Email:            m.Email,
		DisplayName:      m.DisplayName,
		PractitionerName: m.PractitionerName,
		NotionDatabaseID: m.NotionDatabaseID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
