package usecase

import (
	"context"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

// requireOwner is the single ownership gate for every mutating operation.
// ownerID is whatever key the resource is stored under (a user id for blogs
// and projects, a profile id for everything hanging off the profile).
func requireOwner(ownerID, callerID string) error {
	if ownerID != callerID {
		return apperror.Forbidden("You do not have permission to modify this resource")
	}
	return nil
}

// callerProfile resolves the authenticated user's profile so profile-keyed
// resources can be checked with requireOwner.
func callerProfile(ctx context.Context, users domain.UserRepository, userID string) (*domain.Profile, error) {
	return users.GetProfileByUserID(ctx, userID)
}
