package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpoint-hr/hrm-backend-go/internal/domain/auth"
)

// employeeIDFromRequest reads the authenticated employee's id from the
// verified token claims.
func employeeIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", auth.ErrInvalidToken
	}

	return employeeID, nil
}
