package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"glowdesk/models"
	"glowdesk/utils"

	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the lifetime of an admin-surface JWT.
const tokenTTL = 12 * time.Hour

// Authenticate checks the given credentials against the stored bcrypt hash
// and returns a signed token for the admin surface.
func (s *DefaultEmployeeService) Authenticate(email, password string) (string, *models.Employee, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	emp, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !emp.Active {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(emp.ID, emp.Email, emp.Role, tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, emp, nil
}

// RevokeToken records the token's hash in the redis revocation list for the
// remainder of its lifetime. The auth middleware rejects revoked tokens.
func (s *DefaultEmployeeService) RevokeToken(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := "revoked:" + utils.HashToken(token)
	if err := utils.GetAuthCacheClient().Set(ctx, key, "1", tokenTTL).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
