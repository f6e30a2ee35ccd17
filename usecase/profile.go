package usecase

import (
	"context"

	"github.com/kinesia-app/kinesia/domains/profile"
	"github.com/kinesia-app/kinesia/pkg/security"
	"github.com/kinesia-app/kinesia/validations"
)

type profileService struct {
	repo profile.Repository
}

func NewProfileService(repo profile.Repository) profile.IProfileUsecase {
	return &profileService{repo: repo}
}

func (s *profileService) Register(ctx context.Context, req profile.RegisterRequest) (profile.Practitioner, error) {
	if err := validations.ValidateRegister(req); err != nil {
		return profile.Practitioner{}, err
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return profile.Practitioner{}, err
	}

	p := profile.Practitioner{
		Email:       req.Email,
		DisplayName: req.DisplayName,
	}
	if err := s.repo.Create(ctx, &p, hash); err != nil {
		return profile.Practitioner{}, err
	}
	return p, nil
}

func (s *profileService) Login(ctx context.Context, req profile.LoginRequest) (string, profile.Practitioner, error) {
	if err := validations.ValidateLogin(req); err != nil {
		return "", profile.Practitioner{}, err
	}

	p, hash, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == profile.ErrProfileNotFound {
			return "", profile.Practitioner{}, profile.ErrInvalidCredentials
		}
		return "", profile.Practitioner{}, err
	}
	if !security.CheckPasswordHash(req.Password, hash) {
		return "", profile.Practitioner{}, profile.ErrInvalidCredentials
	}

	token, err := security.GenerateToken(p.ID, p.PractitionerName)
	if err != nil {
		return "", profile.Practitioner{}, err
	}
	return token, *p, nil
}

func (s *profileService) GetByID(ctx context.Context, id string) (profile.Practitioner, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return profile.Practitioner{}, err
	}
	return *p, nil
}

func (s *profileService) Update(ctx context.Context, id string, req profile.UpdateProfileRequest) (profile.Practitioner, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return profile.Practitioner{}, err
	}

	if req.DisplayName != nil {
		p.DisplayName = *req.DisplayName
	}
	if req.PractitionerName != nil {
		p.PractitionerName = *req.PractitionerName
	}
	if req.NotionDatabaseID != nil {
		p.NotionDatabaseID = *req.NotionDatabaseID
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return profile.Practitioner{}, err
	}
	return *p, nil
}
