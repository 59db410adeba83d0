// Package jobs runs scheduled background tasks.
package jobs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/bililionairestory/casino-bot/ledger"
)

// Scheduler periodically writes timestamped snapshots of the ledger so a
// corrupted or lost store can be restored by hand.
type Scheduler struct {
	cron      *cron.Cron
	ledger    *ledger.Ledger
	backupDir string
}

func NewScheduler(l *ledger.Ledger, backupDir string) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		ledger:    l,
		backupDir: backupDir,
	}
}

// Start registers the backup job on the given cron schedule (e.g. "@daily")
// and starts the scheduler.
func (s *Scheduler) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		if err := s.Backup(time.Now()); err != nil {
			log.Errorf("Ledger backup failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", schedule, err)
	}

	s.cron.Start()
	log.WithFields(log.Fields{
		"schedule":  schedule,
		"backupDir": s.backupDir,
	}).Info("Backup scheduler started")
	return nil
}

// Stop stops the scheduler and waits for a running backup to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Backup writes one timestamped snapshot of every account to the backup
// directory.
func (s *Scheduler) Backup(now time.Time) error {
	accounts := s.ledger.Snapshot()

	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return fmt.Errorf("creating backup dir: %w", err)
	}

	path := filepath.Join(s.backupDir, fmt.Sprintf("ledger-%s.json", now.UTC().Format("20060102-150405")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}

	log.WithFields(log.Fields{
		"path":     path,
		"accounts": len(accounts),
	}).Info("Ledger backup written")
	return nil
}
