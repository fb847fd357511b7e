// Package keepalive pings the service's own health endpoint on an interval so
// free-tier hosting does not idle the process out. Ping failures are logged
// and otherwise swallowed; the loop must never affect request handling.
package keepalive

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

type Pinger struct {
	url      string
	interval time.Duration
	client   *http.Client
}

// New builds a pinger for url. timeout bounds each outbound request.
func New(url string, interval, timeout time.Duration) *Pinger {
	return &Pinger{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: timeout},
	}
}

// Run blocks, pinging once per interval, until ctx is cancelled.
func (p *Pinger) Run(ctx context.Context) {
	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.ping(ctx)
		}
	}
}

func (p *Pinger) ping(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return
	}
	resp, err := p.client.Do(req)
	if err != nil {
		log.WithError(err).Debug("keep-alive ping failed")
		return
	}
	resp.Body.Close()
}
