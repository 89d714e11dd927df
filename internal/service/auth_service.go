package service

import (
	"context"
	"log/slog"
	"time"

	"FindThemAPI/internal/config"
	"FindThemAPI/internal/helper"
	"FindThemAPI/internal/model"
	"FindThemAPI/internal/repository"

	"github.com/go-playground/validator/v10"
)

type AuthService struct {
	repo      *repository.Repository
	cfg       *config.AppConfig
	validator *validator.Validate
}

func NewAuthService(repo *repository.Repository, cfg *config.AppConfig, validator *validator.Validate) *AuthService {
	return &AuthService{
		repo:      repo,
		cfg:       cfg,
		validator: validator,
	}
}

func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (*model.SignupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Signup validation failed", "error", err)
		return nil, helper.NewBadRequestError("All fields are required")
	}

	if req.Password != req.ConfirmPassword {
		return nil, helper.NewBadRequestError("Passwords do not match")
	}

	err := s.repo.User.Users.Update(func(users []model.User) ([]model.User, error) {
		for _, u := range users {
			if u.UserID == req.UserID {
				return nil, helper.NewBadRequestError("User ID already exists")
			}
		}

		users = append(users, model.User{
			ID:        len(users) + 1,
			Phone:     req.Phone,
			UserID:    req.UserID,
			Password:  req.Password,
			CreatedAt: time.Now(),
		})
		return users, nil
	})
	if err != nil {
		return nil, err
	}

	return &model.SignupResponse{
		Message: "User created successfully",
		UserID:  req.UserID,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, helper.NewBadRequestError("User ID and password are required")
	}

	user, found := s.repo.User.FindByUserID(req.UserID)
	if !found || user.Password != req.Password {
		return nil, helper.NewUnauthorizedError("Invalid credentials")
	}

	token, err := helper.GenerateJWT(s.cfg.JWTSecret, s.cfg.JWTExp, user.UserID, false)
	if err != nil {
		slog.Error("Failed to generate token", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	return &model.LoginResponse{
		Message:    "Login successful",
		UserID:     user.UserID,
		IsLoggedIn: true,
		Token:      token,
	}, nil
}

func (s *AuthService) AdminLogin(ctx context.Context, req model.LoginRequest) (*model.AdminLoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, helper.NewBadRequestError("User ID and password are required")
	}

	authorized := false
	for _, cred := range s.cfg.AdminCredentials {
		if cred.UserID == req.UserID && cred.Password == req.Password {
			authorized = true
			break
		}
	}
	if !authorized {
		return nil, helper.NewUnauthorizedError("Invalid admin credentials")
	}

	token, err := helper.GenerateJWT(s.cfg.JWTSecret, s.cfg.JWTExp, req.UserID, true)
	if err != nil {
		slog.Error("Failed to generate token", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	return &model.AdminLoginResponse{
		Message: "Admin login successful",
		UserID:  req.UserID,
		IsAdmin: true,
		Token:   token,
	}, nil
}
