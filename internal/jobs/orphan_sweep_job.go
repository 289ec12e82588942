package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/profilkantor/profile-api/internal/metrics"
	"github.com/profilkantor/profile-api/internal/storage"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// OrphanSweepJobName is the scheduler name of the orphaned upload sweep
const OrphanSweepJobName = "orphan_sweep"

// ReferenceFunc returns the filenames in one bucket that rows still point at
type ReferenceFunc func(ctx context.Context) ([]string, error)

// ObjectStore is the part of storage.PhotoStore the sweep needs
type ObjectStore interface {
	List(ctx context.Context, bucket storage.Bucket) ([]storage.Object, error)
	DeleteAll(ctx context.Context, bucket storage.Bucket, filenames ...string) error
}

// SweepResult counts what one sweep did per bucket
type SweepResult struct {
	Scanned map[storage.Bucket]int
	Removed map[storage.Bucket]int
}

// OrphanSweepJob deletes stored files that no row references. Files younger
// than the grace period are kept so uploads whose transaction is still open
// are never swept.
type OrphanSweepJob struct {
	store   ObjectStore
	refs    map[storage.Bucket]ReferenceFunc
	grace   time.Duration
	metrics *metrics.JobMetrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewOrphanSweepJob creates the sweep. Buckets without a ReferenceFunc are skipped.
func NewOrphanSweepJob(store ObjectStore, refs map[storage.Bucket]ReferenceFunc, grace time.Duration, m *metrics.JobMetrics, logger *zap.Logger) *OrphanSweepJob {
	return &OrphanSweepJob{
		store:   store,
		refs:    refs,
		grace:   grace,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// FromURLs adapts a source of public URLs into a ReferenceFunc of filenames
func FromURLs(urls ReferenceFunc) ReferenceFunc {
	return func(ctx context.Context) ([]string, error) {
		list, err := urls(ctx)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(list))
		for _, u := range list {
			if name := storage.FilenameFromURL(u); name != "" {
				names = append(names, name)
			}
		}
		return names, nil
	}
}

// Run sweeps every bucket. A bucket whose references cannot be loaded is
// left untouched; its error is combined with the others.
func (j *OrphanSweepJob) Run(ctx context.Context) error {
	_, err := j.Sweep(ctx)
	return err
}

// Sweep is Run with per-bucket counts
func (j *OrphanSweepJob) Sweep(ctx context.Context) (SweepResult, error) {
	result := SweepResult{
		Scanned: make(map[storage.Bucket]int),
		Removed: make(map[storage.Bucket]int),
	}
	cutoff := j.now().Add(-j.grace)

	var errs error
	for _, bucket := range storage.Buckets {
		refFn, ok := j.refs[bucket]
		if !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return result, multierr.Append(errs, err)
		}

		scanned, removed, err := j.sweepBucket(ctx, bucket, refFn, cutoff)
		result.Scanned[bucket] = scanned
		result.Removed[bucket] = removed
		j.metrics.AddRemoved(string(bucket), removed)
		errs = multierr.Append(errs, err)
	}

	j.logger.Info("orphan sweep finished",
		zap.Any("scanned", result.Scanned),
		zap.Any("removed", result.Removed),
		zap.Int("errors", len(multierr.Errors(errs))),
	)
	return result, errs
}

func (j *OrphanSweepJob) sweepBucket(ctx context.Context, bucket storage.Bucket, refFn ReferenceFunc, cutoff time.Time) (int, int, error) {
	names, err := refFn(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load %s references: %w", bucket, err)
	}
	referenced := make(map[string]struct{}, len(names))
	for _, n := range names {
		referenced[n] = struct{}{}
	}

	objects, err := j.store.List(ctx, bucket)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list %s: %w", bucket, err)
	}

	var orphans []string
	for _, obj := range objects {
		if _, ok := referenced[obj.Key]; ok {
			continue
		}
		if obj.ModTime.After(cutoff) {
			continue
		}
		orphans = append(orphans, obj.Key)
	}
	if len(orphans) == 0 {
		return len(objects), 0, nil
	}

	err = j.store.DeleteAll(ctx, bucket, orphans...)
	removed := len(orphans) - len(multierr.Errors(err))
	if err != nil {
		err = fmt.Errorf("failed to delete orphans in %s: %w", bucket, err)
	}

	j.logger.Info("removed orphaned uploads",
		zap.String("bucket", string(bucket)),
		zap.Int("removed", removed),
		zap.Strings("candidates", orphans),
	)
	return len(objects), removed, err
}

// RegisterOrphanSweepJob adds the sweep to the scheduler
func RegisterOrphanSweepJob(scheduler *Scheduler, job *OrphanSweepJob, cronExpr string, timeout time.Duration) error {
	return scheduler.AddJob(OrphanSweepJobName, cronExpr, timeout, job.Run)
}
