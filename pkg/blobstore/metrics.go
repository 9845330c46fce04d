package blobstore

import "time"

// Metrics collects statistics of the Store operations.
type Metrics interface {
	AddPut(success bool, d time.Duration)
	AddGet(success bool)
	AddDelete(success bool)
}

type noopMetrics struct{}

func (noopMetrics) AddPut(bool, time.Duration) {}
func (noopMetrics) AddGet(bool) {}
func (noopMetrics) AddDelete(bool) {}
