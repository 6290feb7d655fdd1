package config

import (
	"context"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// WithContext returns a request-scoped log entry carrying the chi request id.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.WithContext(ctx)
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		entry = entry.WithField("request_id", reqID)
	}
	return entry
}
