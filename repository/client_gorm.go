package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kinesia-app/kinesia/domains/client"
)

// --- Persistence Model ---

type clientModel struct {
	ID           string     `gorm:"primaryKey"`
	OwnerID      string     `gorm:"index:idx_clients_owner;not null"`
	DisplayName  string     `gorm:"index:idx_clients_display_name;not null"`
	Email        string     `gorm:"index:idx_clients_email"`
	Phone        string     `gorm:"index:idx_clients_phone"`
	DateOfBirth  *time.Time
	Notes        string
	NotionPageID string
	Enabled      bool      `gorm:"default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (clientModel) TableName() string {
	return "clients"
}

// --- Repository Implementation ---

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) InitSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&clientModel{})
}

func (r *ClientGormRepository) Create(ctx context.Context, c *client.Client) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	m := toClientModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicate(err) {
			return client.ErrDuplicateClient
		}
		return err
	}
	return nil
}

func (r *ClientGormRepository) ListByOwner(ctx context.Context, ownerID string) ([]client.Client, error) {
	var models []clientModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("display_name").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	clients := make([]client.Client, 0, len(models))
	for _, m := range models {
		clients = append(clients, fromClientModel(m))
	}
	return clients, nil
}

func (r *ClientGormRepository) GetByID(ctx context.Context, ownerID, id string) (*client.Client, error) {
	var m clientModel
	err := r.db.WithContext(ctx).First(&m, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, client.ErrClientNotFound
		}
		return nil, err
	}
	c := fromClientModel(m)
	return &c, nil
}

func (r *ClientGormRepository) Update(ctx context.Context, c *client.Client) error {
	c.UpdatedAt = time.Now()
	m := toClientModel(c)

	result := r.db.WithContext(ctx).
		Model(&clientModel{}).
		Where("id = ? AND owner_id = ?", c.ID, c.OwnerID).
		Select("*").Omit("id", "owner_id", "created_at").
		Updates(&m)
	if result.Error != nil {
		if isDuplicate(result.Error) {
			return client.ErrDuplicateClient
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return client.ErrClientNotFound
	}
	return nil
}

func (r *ClientGormRepository) Delete(ctx context.Context, ownerID, id string) error {
	result := r.db.WithContext(ctx).
		Delete(&clientModel{}, "id = ? AND owner_id = ?", id, ownerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return client.ErrClientNotFound
	}
	return nil
}

// --- Mapping ---

func toClientModel(c *client.Client) clientModel {
	return clientModel{
		ID:           c.ID,
		OwnerID:      c.OwnerID,
		DisplayName:  c.DisplayName,
		Email:        c.Email,
		Phone:        c.Phone,
		DateOfBirth:  c.DateOfBirth,
		Notes:        c.Notes,
		NotionPageID: c.NotionPageID,
		Enabled:      c.Enabled,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func fromClientModel(m clientModel) client.Client {
	return client.Client{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		DisplayName:  m.DisplayName,
		Email:        m.Email,
		Phone:        m.Phone,
		DateOfBirth:  m.DateOfBirth,
		Notes:        m.Notes,
		NotionPageID: m.NotionPageID,
		Enabled:      m.Enabled,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// isDuplicate detects unique-constraint violations across SQLite and Postgres.
func isDuplicate(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
