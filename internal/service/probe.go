package service

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"stockcast/internal/logger"
)

const probeTimeout = 3 * time.Second

// ProbeService periodically checks whether the ML service is reachable.
// Any HTTP response counts as "up"; only transport failures mark it down.
type ProbeService struct {
	target string
	httpc  *http.Client
	up     atomic.Bool
	log    *logger.Logger
}

func NewProbeService(baseURL string, log *logger.Logger) *ProbeService {
	return &ProbeService{
		target: baseURL,
		httpc:  &http.Client{Timeout: probeTimeout},
		log:    log,
	}
}

// Up reports the result of the most recent probe. False until the first
// probe completes.
func (s *ProbeService) Up() bool { return s.up.Load() }

// Run probes the upstream every tick until ctx is cancelled.
func (s *ProbeService) Run(ctx context.Context, tick time.Duration) {
	s.probe(ctx)

	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.probe(ctx)
		}
	}
}

func (s *ProbeService) probe(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.target, nil)
	if err != nil {
		s.up.Store(false)
		return
	}
	resp, err := s.httpc.Do(req)
	if err != nil {
		if s.up.Swap(false) && s.log != nil {
			s.log.Warnw("upstream_probe_down", "target", s.target, "err", err)
		}
		return
	}
	_ = resp.Body.Close()
	if !s.up.Swap(true) && s.log != nil {
		s.log.Infow("upstream_probe_up", "target", s.target)
	}
}
