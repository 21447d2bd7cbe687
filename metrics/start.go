package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/mikotoken/vault/common"
)

var logger *log.Entry = log.WithFields(log.Fields{"prefix": "metrics"})

// PullService serves the prometheus pull endpoint.
type PullService struct {
	addr string
}

// NewPullService creates a pull service listening on addr.
func NewPullService(addr string) *PullService {
	return &PullService{
		addr: addr,
	}
}

// Run serves /metrics until ctx is cancelled.
func (s *PullService) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:           s.addr,
		Handler:        mux,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Serving metrics on %v", s.addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return errors.Wrap(err, "metrics server failed")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

// Start runs the pull service in the background when metrics are enabled.
func Start(ctx context.Context) {
	if !viper.GetBool(common.CfgMetricsEnabled) {
		return
	}
	service := NewPullService(viper.GetString(common.CfgMetricsAddr))
	go func() {
		if err := service.Run(ctx); err != nil {
			logger.Errorf("Metrics service stopped: %v", err)
		}
	}()
}
