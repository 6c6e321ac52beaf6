package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/prms-backend-go/internal/store"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// JournalConfig holds change journal configuration
type JournalConfig struct {
	BatchSize     int           // default: 100
	FlushInterval time.Duration // default: 2 seconds
	QueueSize     int           // default: 1000
}

// ChangeJournal appends every store change to the store_changes table. Rows
// of one process share a run id so sequence numbers never collide.
type ChangeJournal struct {
	db     *database.DB
	runID  uuid.UUID
	config JournalConfig
	logger *slog.Logger

	queue  chan store.Change
	sub    *store.Subscription
	wg     sync.WaitGroup
	stopCh chan struct{}
	once   sync.Once
}

func NewChangeJournal(db *database.DB, cfg JournalConfig, logger *slog.Logger) *ChangeJournal {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = 2 * time.Second
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}
	runID, err := uuid.NewV7()
	if err != nil {
		runID = uuid.New()
	}
	return &ChangeJournal{
		db:     db,
		runID:  runID,
		config: cfg,
		logger: logger,
		queue:  make(chan store.Change, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}
}

func (j *ChangeJournal) RunID() uuid.UUID {
	return j.runID
}

// Attach subscribes the journal to s and starts the writer.
func (j *ChangeJournal) Attach(s *store.Store) {
	j.sub = s.Subscribe(j.record)
	j.wg.Add(1)
	go j.worker()
	j.logger.Info("change journal started", slog.String("run_id", j.runID.String()))
}

func (j *ChangeJournal) record(c store.Change) {
	select {
	case j.queue <- c:
	default:
		j.logger.Warn("change journal queue full, change dropped",
			slog.Uint64("seq", c.Seq),
			slog.String("change", string(c.Kind)),
		)
	}
}

func (j *ChangeJournal) worker() {
	defer j.wg.Done()

	batch := make([]store.Change, 0, j.config.BatchSize)
	ticker := time.NewTicker(j.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := j.write(ctx, batch); err != nil {
			j.logger.Error("change journal flush failed", slog.Int("count", len(batch)), slog.String("error", err.Error()))
		} else {
			j.logger.Debug("change journal flushed", slog.Int("count", len(batch)))
		}
		batch = batch[:0]
	}

	for {
		select {
		case c := <-j.queue:
			batch = append(batch, c)
			if len(batch) >= j.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-j.stopCh:
			for {
				select {
				case c := <-j.queue:
					batch = append(batch, c)
				default:
					flush()
					return
				}
			}
		}
	}
}

func (j *ChangeJournal) write(ctx context.Context, changes []store.Change) error {
	return WithTransaction(ctx, j.db, func(ctx context.Context, tx pgx.Tx) error {
		valueStrings := make([]string, 0, len(changes))
		args := make([]interface{}, 0, len(changes)*5)
		for i, c := range changes {
			base := i * 5
			valueStrings = append(valueStrings, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5))
			args = append(args, j.runID, int64(c.Seq), string(c.Kind), c.EntityID, c.At)
		}

		query := fmt.Sprintf(`
			INSERT INTO store_changes (run_id, seq, kind, entity_id, occurred_at)
			VALUES %s
			ON CONFLICT (run_id, seq) DO NOTHING
		`, strings.Join(valueStrings, ", "))

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("insert store changes: %w", err)
		}
		return nil
	})
}

// Stop unsubscribes and writes whatever is still queued.
func (j *ChangeJournal) Stop() {
	j.once.Do(func() {
		if j.sub != nil {
			j.sub.Unsubscribe()
		}
		close(j.stopCh)
		j.wg.Wait()
		j.logger.Info("change journal stopped")
	})
}
