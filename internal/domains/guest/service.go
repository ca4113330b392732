package guest

import "context"

type Service interface {
	// RequestAccess upserts a guest access for the list behind slug and
	// returns a signed session token for the guest cookie.
	RequestAccess(ctx context.Context, slug string, req AccessRequest) (string, error)
}
