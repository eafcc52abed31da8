package github

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ClientProvider hands out installation clients, caching them with a TTL so
// repeated jobs for the same installation skip the auth handshake. Entries
// expire before the one-hour installation token does, so a client is never
// served past its credentials' lifetime; Invalidate covers rotation mid-TTL.
type ClientProvider struct {
	factory ClientFactory
	cache   *gocache.Cache
	logger  *slog.Logger
}

// NewClientProvider creates a provider whose cached clients expire after ttl.
func NewClientProvider(factory ClientFactory, ttl time.Duration, logger *slog.Logger) *ClientProvider {
	if ttl <= 0 {
		ttl = 45 * time.Minute
	}
	return &ClientProvider{
		factory: factory,
		cache:   gocache.New(ttl, 10*time.Minute),
		logger:  logger,
	}
}

// GetClient returns a cached client for the installation or creates and
// caches a new one.
func (p *ClientProvider) GetClient(ctx context.Context, installationID int64) (Client, error) {
	key := strconv.FormatInt(installationID, 10)

	if cached, ok := p.cache.Get(key); ok {
		return cached.(Client), nil
	}

	client, err := p.factory(ctx, installationID)
	if err != nil {
		return nil, err
	}

	p.cache.SetDefault(key, client)
	p.logger.Debug("cached installation client", "installation_id", installationID)
	return client, nil
}

// Invalidate drops the cached client for an installation, forcing a fresh
// auth handshake on the next request. Called when credentials are rotated or
// an API call fails with an auth error.
func (p *ClientProvider) Invalidate(installationID int64) {
	p.cache.Delete(strconv.FormatInt(installationID, 10))
}
