package services

import (
	"context"

	"github.com/dmitrijs2005/gophdiary/internal/client/client"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/common"
)

// AuthHeader returns the bearer authorization header for id, or an empty
// header when there is no identity.
func AuthHeader(id *models.Identity) client.Header {
	if id == nil || id.Token == "" {
		return client.Header{}
	}
	return client.Header{common.AuthorizationHeaderName: common.BearerPrefix + id.Token}
}

// HeaderProvider yields the headers for the next authenticated request.
type HeaderProvider interface {
	AuthHeader(ctx context.Context) client.Header
}
