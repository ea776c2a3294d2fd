// Package dlq is the durable dead-letter store for payouts that exhausted
// their retry budget. Entries wait here for explicit operator replay; nothing
// replays them automatically.
package dlq

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/clearpath-au/go-remit/internal/common/log"
	"github.com/clearpath-au/go-remit/internal/models"
)

type Store interface {
	Push(ctx context.Context, entry models.DeadLetterEntry) (id string, err error)
	List(ctx context.Context) ([]models.DeadLetterEntry, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

type badgerStore struct {
	db       *badger.DB
	pathDB   string
	notifier Notifier
}

// NewBadgerStore opens (or creates) the store under the OS temp dir. The
// notifier may be nil; it only mirrors entries to a DLQ topic for ops
// tooling and never gates the durable write.
func NewBadgerStore(bucket string, notifier Notifier) (Store, error) {
	pathDB := path.Join(os.TempDir(), bucket)

	opts := badger.DefaultOptions(pathDB)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open dlq store: %w", err)
	}

	return &badgerStore{db: db, pathDB: pathDB, notifier: notifier}, nil
}

// Push persists the entry under a collision-resistant key. The key embeds
// timestamp, provider, and a uuid so concurrent writers never clash.
func (s *badgerStore) Push(ctx context.Context, entry models.DeadLetterEntry) (string, error) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if entry.CauseErr != nil && entry.Error == "" {
		entry.Error = entry.CauseErr.Error()
	}
	entry.ID = fmt.Sprintf("dlq:%d-%s-%s", entry.Timestamp.UnixNano(), entry.Provider, uuid.NewString())

	raw, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("failed to marshal dlq entry: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(entry.ID), raw)
	})
	if err != nil {
		return "", fmt.Errorf("failed to persist dlq entry: %w", err)
	}

	if s.notifier != nil {
		if nErr := s.notifier.Notify(ctx, entry); nErr != nil {
			log.Warn(ctx, "[DLQ]",
				log.String("status", "notify failed, entry still persisted"),
				log.String("id", entry.ID),
				log.Err(nErr))
		}
	}

	log.Info(ctx, "[DLQ]",
		log.String("status", "entry persisted"),
		log.String("id", entry.ID),
		log.String("provider", entry.Provider),
		log.String("idempotency_key", entry.Request.IdempotencyKey))

	return entry.ID, nil
}

func (s *badgerStore) List(ctx context.Context) ([]models.DeadLetterEntry, error) {
	var entries []models.DeadLetterEntry

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			raw, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}

			var entry models.DeadLetterEntry
			if err := json.Unmarshal(raw, &entry); err != nil {
				return fmt.Errorf("corrupt dlq entry %s: %w", it.Item().Key(), err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list dlq entries: %w", err)
	}

	return entries, nil
}

func (s *badgerStore) Delete(ctx context.Context, id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete dlq entry: %w", err)
	}
	return nil
}

func (s *badgerStore) Close() error {
	return s.db.Close()
}
