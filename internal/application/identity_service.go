package application

import "github.com/google/uuid"

// IdentityService issues anonymous user identifiers. Tokens are not
// authenticated and not collision-checked; they only scope ownership of
// saved routes.
type IdentityService struct{}

// NewIdentityService creates a new IdentityService.
func NewIdentityService() *IdentityService {
	return &IdentityService{}
}

// Issue returns a fresh anonymous identifier.
func (s *IdentityService) Issue() string {
	return uuid.NewString()
}
