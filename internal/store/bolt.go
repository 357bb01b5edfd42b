// Package store persists lint-run history in a bolt database. Each run
// is stored under a timestamp key so `checklint history` can show how a
// document's integrity evolved and diff consecutive runs.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/agentstation/utc"
	"go.etcd.io/bbolt"

	"github.com/code-review-checklists/checklint/pkg/checks"
	"github.com/code-review-checklists/checklint/pkg/constants"
	"github.com/code-review-checklists/checklint/pkg/errors"
	"github.com/code-review-checklists/checklint/pkg/report"
)

// bucketRuns holds runs keyed by RFC3339Nano timestamp -> Run JSON.
// Timestamp keys sort chronologically, so a reverse cursor walk yields
// newest-first.
const bucketRuns = "runs"

// Store is a bolt-backed lint-run history.
type Store struct {
	db *bbolt.DB
}

// Run is one recorded lint run.
type Run struct {
	Document   string           `json:"document"`
	Digest     string           `json:"digest"`
	RecordedAt utc.Time         `json:"recorded_at"`
	Duration   time.Duration    `json:"duration"`
	Errors     int              `json:"errors"`
	Warnings   int              `json:"warnings"`
	Findings   []checks.Finding `json:"findings"`
}

// Open opens (or creates) the history store at path. The parent
// directory is created as needed. The file is private to the user.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", filepath.Dir(path), err)
	}

	db, err := bbolt.Open(path, constants.SecureFilePermissions, &bbolt.Options{
		Timeout: constants.StoreOpenTimeout,
	})
	if err != nil {
		return nil, errors.WrapStore("open", "", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRuns))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, errors.WrapStore("open", bucketRuns, err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends a lint run to the history, pruning the oldest entries
// beyond the retention limit.
func (s *Store) Record(rep *report.Report) error {
	run := Run{
		Document:   rep.Document,
		Digest:     rep.Digest,
		RecordedAt: rep.GeneratedAt,
		Duration:   rep.Duration,
		Errors:     rep.Summary.Errors,
		Warnings:   rep.Summary.Warnings,
		Findings:   rep.Findings,
	}

	value, err := json.Marshal(run)
	if err != nil {
		return errors.WrapStore("record", bucketRuns, err)
	}
	key := []byte(run.RecordedAt.Format(time.RFC3339Nano))

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketRuns))
		if err := bucket.Put(key, value); err != nil {
			return err
		}
		return prune(bucket, constants.MaxHistoryRuns)
	})
	return errors.WrapStore("record", bucketRuns, err)
}

// List returns up to limit runs, newest first. A non-positive limit
// returns everything.
func (s *Store) List(limit int) ([]Run, error) {
	var runs []Run
	err := s.db.View(func(tx *bbolt.Tx) error {
		cursor := tx.Bucket([]byte(bucketRuns)).Cursor()
		for k, v := cursor.Last(); k != nil; k, v = cursor.Prev() {
			if limit > 0 && len(runs) >= limit {
				break
			}
			var run Run
			if err := json.Unmarshal(v, &run); err != nil {
				return err
			}
			runs = append(runs, run)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapStore("list", bucketRuns, err)
	}
	return runs, nil
}

// Latest returns the newest run, or ErrNotFound when the history is empty.
func (s *Store) Latest() (*Run, error) {
	runs, err := s.List(1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, errors.NewNotFoundError("run", "latest")
	}
	return &runs[0], nil
}

// prune deletes the oldest entries until at most max remain. Keys are
// collected before deleting so the cursor is never invalidated.
func prune(bucket *bbolt.Bucket, max int) error {
	var keys [][]byte
	cursor := bucket.Cursor()
	for k, _ := cursor.First(); k != nil; k, _ = cursor.Next() {
		keys = append(keys, append([]byte(nil), k...))
	}
	for i := 0; len(keys)-i > max; i++ {
		if err := bucket.Delete(keys[i]); err != nil {
			return err
		}
	}
	return nil
}
