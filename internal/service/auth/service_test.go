package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/auth"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/employee"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range employees {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (r *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	return nil
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := newFakeEmployeeRepo(employee.Employee{
		ID:           "EMP001",
		Name:         "Jordan Smith",
		Email:        "jordan@example.com",
		PasswordHash: string(hash),
		IsAdmin:      true,
	})
	jwtService := jwt.NewJWTService("test-secret", "1h")
	svc := NewAuthService(repo, jwtService)

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, auth.LoginRequest{Email: "jordan@example.com", Password: "correct horse"})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "EMP001", resp.EmployeeID)
		assert.Equal(t, "Jordan Smith", resp.Name)
		assert.True(t, resp.IsAdmin)
		assert.Greater(t, resp.AccessTokenExpiresAt, int64(0))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "jordan@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email gets the same rejection", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "correct horse"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("malformed email fails validation", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "not-an-email", Password: "x"})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}
