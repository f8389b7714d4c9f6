package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/workpoint-hr/hrm-backend-go/internal/domain/auth"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/employee"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwtService jwt.Service
}

func NewAuthService(employeeRepository employee.EmployeeRepository, jwtService jwt.Service) *AuthServiceImpl {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepository,
		jwtService:         jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			// Same rejection as a wrong password so login probes can't
			// enumerate registered emails.
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.IsAdmin)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:          token,
		AccessTokenExpiresAt: expiresAt,
		EmployeeID:           emp.ID,
		Name:                 emp.Name,
		IsAdmin:              emp.IsAdmin,
	}, nil
}
