// Package jobs runs background maintenance work.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	neturl "net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"neurosync/internal/resources"
	"neurosync/internal/validation"
)

// LinkChecker periodically checks that resource URLs are reachable.
type LinkChecker struct {
	catalog  *resources.Catalog
	interval time.Duration
	workers  int
	client   *http.Client
	log      *zap.Logger

	validate func(ctx context.Context, url string) (bool, string)
	now      func() time.Time
}

// errRedirectBlocked marks a redirect to an address the guard refuses.
var errRedirectBlocked = errors.New("redirect blocked")

// NewLinkChecker creates a link checker that runs every interval.
func NewLinkChecker(catalog *resources.Catalog, interval time.Duration, log *zap.Logger) *LinkChecker {
	l := &LinkChecker{
		catalog:  catalog,
		interval: interval,
		workers:  4,
		log:      log,
		validate: validation.ValidatePublicURL,
		now:      time.Now,
	}
	l.client = &http.Client{
		Timeout:       10 * time.Second,
		CheckRedirect: l.checkRedirect,
	}
	return l
}

// checkRedirect applies the address guard to every hop, not just the first URL.
func (l *LinkChecker) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= 10 {
		return errors.New("too many redirects")
	}
	if ok, msg := l.validate(req.Context(), req.URL.String()); !ok {
		return fmt.Errorf("%w: %s", errRedirectBlocked, msg)
	}
	return nil
}

// Start checks every linked resource immediately and then on each tick until
// ctx is cancelled.
func (l *LinkChecker) Start(ctx context.Context) {
	l.log.Info("link checker started", zap.Duration("interval", l.interval))

	l.CheckAll(ctx)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.log.Info("link checker stopped")
			return
		case <-ticker.C:
			l.CheckAll(ctx)
		}
	}
}

// CheckAll checks each linked resource once, at most workers at a time.
func (l *LinkChecker) CheckAll(ctx context.Context) {
	linked := l.catalog.Linked()
	if len(linked) == 0 {
		return
	}
	l.log.Debug("checking resource links", zap.Int("count", len(linked)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(l.workers, 1))

	for _, r := range linked {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			health := l.check(gctx, r.URL)
			if err := l.catalog.SetHealth(r.ID, health); err != nil {
				l.log.Warn("failed to record link health", zap.String("resource", r.ID), zap.Error(err))
				return nil
			}
			if health.Status != resources.HealthHealthy {
				l.log.Warn("resource link unhealthy",
					zap.String("resource", r.ID),
					zap.String("url", r.URL),
					zap.String("status", health.Status),
					zap.String("error", health.Error))
			}
			return nil
		})
	}

	_ = g.Wait()
}

// check sends a HEAD request to url. Any HTTP response counts as reachable.
func (l *LinkChecker) check(ctx context.Context, url string) resources.LinkHealth {
	health := resources.LinkHealth{CheckedAt: l.now()}

	if ok, msg := l.validate(ctx, url); !ok {
		health.Status = resources.HealthUnhealthy
		health.Error = msg
		return health
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		health.Status = resources.HealthUnhealthy
		health.Error = "invalid URL: " + err.Error()
		return health
	}
	req.Header.Set("User-Agent", "NeuroSync-LinkChecker/1.0")

	resp, err := l.client.Do(req)
	if errors.Is(err, errRedirectBlocked) {
		health.Status = resources.HealthUnhealthy
		health.Error = err.Error()
		var uerr *neturl.Error
		if errors.As(err, &uerr) {
			health.Error = uerr.Err.Error()
		}
		return health
	}
	if err != nil {
		health.Status = resources.HealthUnknown
		health.Error = "connection failed: " + err.Error()
		return health
	}
	defer resp.Body.Close()

	health.Status = resources.HealthHealthy
	return health
}
