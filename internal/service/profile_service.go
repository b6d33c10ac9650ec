package service

import (
	"context"
	"dsa_platform_backend/internal/model"
	"dsa_platform_backend/internal/repository"
)

type ProfileService struct {
	ProfileRepo *repository.ProfileRepository
}

func NewProfileService(profileRepo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{ProfileRepo: profileRepo}
}

// Get 没有资料时返回 nil, nil
func (s *ProfileService) Get(ctx context.Context, userID uint) (*model.UserProfile, error) {
	return s.ProfileRepo.FindByUserID(ctx, userID)
}

func (s *ProfileService) Save(ctx context.Context, userID uint, profile *model.UserProfile) error {
	profile.ID = 0
	profile.UserID = userID
	return s.ProfileRepo.Upsert(ctx, profile)
}
