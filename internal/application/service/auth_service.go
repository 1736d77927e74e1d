package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/suplefit/backoffice-api/internal/domain/entity"
	"github.com/suplefit/backoffice-api/internal/domain/repository"
	"github.com/suplefit/backoffice-api/pkg/apperror"
	"github.com/suplefit/backoffice-api/pkg/oauth"
	"github.com/suplefit/backoffice-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo      repository.UserRepository
	roleRepo      repository.RoleRepository
	jwtManager    *utils.JWTManager
	googleService *oauth.GoogleService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	jwtManager *utils.JWTManager,
	googleService *oauth.GoogleService,
) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		roleRepo:      roleRepo,
		jwtManager:    jwtManager,
		googleService: googleService,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if user.Provider != "local" || user.Password == "" {
		// Google accounts have no local password
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	if !user.Active {
		return nil, apperror.ErrForbidden
	}

	return s.issueTokens(ctx, user.ID)
}

// issueTokens loads the user with roles and builds a fresh token pair.
func (s *AuthService) issueTokens(ctx context.Context, userID uuid.UUID) (*LoginOutput, error) {
	user, err := s.userRepo.GetWithRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	accessToken, err := s.jwtManager.GenerateToken(user.ID, user.Email, user.GetRoleNames(), user.GetPermissions())
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RegisterInput represents the registration input
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register creates a new staff account with the default role
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	// Check if email already exists
	existingUser, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	// Hash password
	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     strings.ToLower(input.Email),
		Password:  hashedPassword,
		Provider:  "local",
		Active:    true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Assign default "staff" role
	defaultRole, err := s.roleRepo.GetByName(ctx, "staff")
	if err == nil && defaultRole != nil {
		_ = s.userRepo.AssignRole(ctx, user.ID, defaultRole.ID)
	}

	return user, nil
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}
	return s.issueTokens(ctx, userID)
}

// GetCurrentUser returns the current user by ID
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetWithRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePassword changes the user's password
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrNotFound
	}

	if user.Provider != "local" {
		return apperror.NewBadRequestError("Google accounts cannot change passwords here")
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return apperror.NewBadRequestError("Current password is incorrect")
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	return s.userRepo.Update(ctx, user)
}

// UpdateProfileInput represents the update profile input
type UpdateProfileInput struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Photo     *string
}

// UpdateProfile updates the user's profile
func (s *AuthService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Photo != nil {
		user.Photo = input.Photo
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GoogleAuthURL builds the consent screen URL for the given CSRF state.
func (s *AuthService) GoogleAuthURL(state string) (string, error) {
	if !s.googleService.IsConfigured() {
		return "", oauth.ErrOAuthNotConfigured
	}
	return s.googleService.AuthURL(state), nil
}

// GoogleLogin completes the OAuth code exchange and signs in the matching
// staff account, creating it on first sign-in.
func (s *AuthService) GoogleLogin(ctx context.Context, code string) (*LoginOutput, error) {
	if !s.googleService.IsConfigured() {
		return nil, oauth.ErrOAuthNotConfigured
	}

	token, err := s.googleService.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	info, err := s.googleService.FetchUser(ctx, token)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(info.Email)
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		first, last := splitName(info.Name)
		user = &entity.User{
			FirstName:  first,
			LastName:   last,
			Email:      email,
			Provider:   "google",
			ProviderID: &info.ID,
			Active:     true,
		}
		if info.Picture != "" {
			photo := info.Picture
			user.Photo = &photo
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}

		defaultRole, err := s.roleRepo.GetByName(ctx, "staff")
		if err == nil && defaultRole != nil {
			_ = s.userRepo.AssignRole(ctx, user.ID, defaultRole.ID)
		}
	} else {
		if !user.Active {
			return nil, apperror.ErrForbidden
		}
		// Link the Google identity to an existing local account
		if user.ProviderID == nil {
			user.Provider = "google"
			user.ProviderID = &info.ID
			if user.Photo == nil && info.Picture != "" {
				photo := info.Picture
				user.Photo = &photo
			}
			_ = s.userRepo.Update(ctx, user)
		}
	}

	return s.issueTokens(ctx, user.ID)
}

// GoogleRedirectURLs returns the frontend URLs for the callback handler.
func (s *AuthService) GoogleRedirectURLs() (success, failure string) {
	return s.googleService.FrontendSuccessURL(), s.googleService.FrontendErrorURL()
}

func splitName(full string) (string, string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "Staff", ""
	}
	parts := strings.SplitN(full, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
