// Package bootstrap assembles ready-to-use components from the configuration.
package bootstrap

import (
	"fmt"

	"github.com/183amir/bob.db.atnt/pkg/blobstore"
	"github.com/183amir/bob.db.atnt/pkg/config"
	loggerconfig "github.com/183amir/bob.db.atnt/pkg/config/logger"
	storageconfig "github.com/183amir/bob.db.atnt/pkg/config/storage"
	"github.com/183amir/bob.db.atnt/pkg/metrics"
	"github.com/183amir/bob.db.atnt/pkg/util/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Storage is an initialized blob storage together with its logger.
type Storage struct {
	*blobstore.Store

	Log *zap.Logger
}

// NewStorage builds the logger from "logger" section and the blob storage
// from "storage" section of c and initializes the storage. Storage metrics
// are registered in reg unless it is nil.
func NewStorage(c *config.Config, reg prometheus.Registerer) (*Storage, error) {
	prm, err := loggerconfig.Prm(c)
	if err != nil {
		return nil, err
	}

	log, err := logger.NewLogger(prm)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	opts := append(storageconfig.StoreOptions(c), blobstore.WithLogger(log))
	if reg != nil {
		opts = append(opts, blobstore.WithMetrics(metrics.NewStoreMetrics(reg)))
	}

	s := blobstore.New(opts...)
	if err := s.Init(); err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("init blob storage: %w", err)
	}

	log.Debug("blob storage is ready",
		zap.String("root", s.Root()),
		zap.String("extension", storageconfig.Extension(c)))

	return &Storage{Store: s, Log: log}, nil
}

// Close closes the storage and flushes the logger.
func (x *Storage) Close() error {
	err := x.Store.Close()
	_ = x.Log.Sync()
	return err
}
