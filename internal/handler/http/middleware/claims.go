package middleware

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
)

func stringClaim(ctx context.Context, key string) (string, bool) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", false
	}
	value, ok := claims[key].(string)
	return value, ok && value != ""
}

// UserIDFromContext returns the user_id claim of the verified token.
func UserIDFromContext(ctx context.Context) (string, bool) {
	return stringClaim(ctx, "user_id")
}

// EmployeeIDFromContext returns the employee_id claim. Users without an
// employee profile carry a null claim.
func EmployeeIDFromContext(ctx context.Context) (string, bool) {
	return stringClaim(ctx, "employee_id")
}

func EmailFromContext(ctx context.Context) (string, bool) {
	return stringClaim(ctx, "email")
}
