package services

import (
	"context"
	"time"
)

// AuthSvc authenticates the operations account used for rate and currency
// maintenance endpoints.
type AuthSvc interface {
	// Login verifies admin credentials and issues a signed bearer token.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}
