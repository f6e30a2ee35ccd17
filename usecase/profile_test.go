package usecase

import (
	"context"
	"testing"

	"github.com/kinesia-app/kinesia/domains/profile"
	"github.com/kinesia-app/kinesia/pkg/security"
)

type fakeProfileRepo struct {
	byID    map[string]profile.Practitioner
	byEmail map[string]string
	hashes  map[string]string
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		byID:    make(map[string]profile.Practitioner),
		byEmail: make(map[string]string),
		hashes:  make(map[string]string),
	}
}

func (r *fakeProfileRepo) InitSchema(ctx context.Context) error { return nil }

func (r *fakeProfileRepo) Create(ctx context.Context, p *profile.Practitioner, passwordHash string) error {
	if p.ID == "" {
		p.ID = "prac-1"
	}
	r.byID[p.ID] = *p
	r.byEmail[p.Email] = p.ID
	r.hashes[p.ID] = passwordHash
	return nil
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id string) (*profile.Practitioner, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	return &p, nil
}

func (r *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*profile.Practitioner, string, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return nil, "", profile.ErrProfileNotFound
	}
	p := r.byID[id]
	return &p, r.hashes[id], nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, p *profile.Practitioner) error {
	if _, ok := r.byID[p.ID]; !ok {
		return profile.ErrProfileNotFound
	}
	r.byID[p.ID] = *p
	return nil
}

func TestProfileRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	service := NewProfileService(newFakeProfileRepo())

	registered, err := service.Register(ctx, profile.RegisterRequest{
		Email:       "ana@example.com",
		Password:    "long-enough-password",
		DisplayName: "Ana",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, logged, err := service.Login(ctx, profile.LoginRequest{
		Email:    "ana@example.com",
		Password: "long-enough-password",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != registered.ID {
		t.Fatalf("expected same practitioner, got %s vs %s", logged.ID, registered.ID)
	}

	claims, err := security.ValidateToken(token)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if claims.PractitionerID != registered.ID {
		t.Fatalf("token carries wrong practitioner: %s", claims.PractitionerID)
	}
}

func TestProfileLoginRejectsBadPassword(t *testing.T) {
	ctx := context.Background()
	service := NewProfileService(newFakeProfileRepo())

	if _, err := service.Register(ctx, profile.RegisterRequest{
		Email:       "ana@example.com",
		Password:    "long-enough-password",
		DisplayName: "Ana",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := service.Login(ctx, profile.LoginRequest{Email: "ana@example.com", Password: "wrong-password"})
	if err != profile.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	// Unknown emails map onto the same error to avoid account probing.
	_, _, err = service.Login(ctx, profile.LoginRequest{Email: "ghost@example.com", Password: "whatever-pass"})
	if err != profile.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}
