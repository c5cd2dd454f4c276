package services

import (
	"errors"

	"foodie-finder/models"
	"foodie-finder/repositories"
	"foodie-finder/utils"
)

// AuthService fronts the external identity provider. Accounts here are the
// in-memory simulation of that provider; every failure is surfaced as an
// AuthError and callers only check presence.
type AuthService struct {
	userRepo *repositories.UserRepository
	sessions *repositories.SessionRepository
}

func NewAuthService(userRepo *repositories.UserRepository, sessions *repositories.SessionRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.LoginResponse, error) {
	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
		return nil, &models.AuthError{Op: "sign up", Err: errors.New("email already registered")}
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, &models.AuthError{Op: "sign up", Err: err}
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		FullName: req.FullName,
		Phone:    req.Phone,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, &models.AuthError{Op: "sign up", Err: err}
	}

	return s.issueToken(user, "sign up")
}

func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, &models.AuthError{Op: "sign in", Err: errors.New("invalid email or password")}
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, &models.AuthError{Op: "sign in", Err: errors.New("invalid email or password")}
	}

	return s.issueToken(user, "sign in")
}

// GoogleLogin trusts the identity asserted by the provider token and creates
// the account on first sign-in, the way the original delegates entirely to
// its provider.
func (s *AuthService) GoogleLogin(req models.GoogleLoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		user = &models.User{
			Email:       req.Email,
			FullName:    req.Name,
			GoogleLogin: true,
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, &models.AuthError{Op: "google sign in", Err: err}
		}
	}

	return s.issueToken(user, "google sign in")
}

// Logout drops the user's in-memory session; the cart, notifications and any
// open checkout go with it.
func (s *AuthService) Logout(userID int) {
	s.sessions.Delete(userID)
}

func (s *AuthService) GetProfile(userID int) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, &models.AuthError{Op: "get profile", Err: err}
	}
	return user, nil
}

func (s *AuthService) UpdateProfile(userID int, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, &models.AuthError{Op: "update profile", Err: err}
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Address != "" {
		user.Address = req.Address
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, &models.AuthError{Op: "update profile", Err: err}
	}
	return user, nil
}

func (s *AuthService) issueToken(user *models.User, op string) (*models.LoginResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, &models.AuthError{Op: op, Err: err}
	}
	return &models.LoginResponse{Token: token, User: *user}, nil
}
