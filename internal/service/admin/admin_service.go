package admin

import (
	"context"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=WhitelistAppender
type WhitelistAppender interface {
	Add(ctx context.Context, email string) error
}

type AdminService struct {
	whitelist WhitelistAppender
}

func NewAdminService(whitelist WhitelistAppender) *AdminService {
	return &AdminService{
		whitelist: whitelist,
	}
}

// AddToWhitelist appends one entry. Duplicates surface as repo.ErrEmailExists
// from the storage uniqueness constraint; there is no removal path.
func (s *AdminService) AddToWhitelist(ctx context.Context, email string) error {
	return s.whitelist.Add(ctx, email)
}
