package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockPulse/internal/model"
)

// SQLiteRecorder persists quote and prediction history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS quotes (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			symbol         TEXT NOT NULL,
			price          REAL,
			change         REAL,
			change_percent REAL,
			volume         INTEGER,
			is_real_time   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_ts ON quotes(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_symbol ON quotes(symbol)`,

		`CREATE TABLE IF NOT EXISTS predictions (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			symbol          TEXT NOT NULL,
			model           TEXT,
			horizon_days    INTEGER,
			current_price   REAL,
			predicted_price REAL,
			change_percent  REAL,
			confidence      REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_predictions_ts ON predictions(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_predictions_symbol ON predictions(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordQuote(symbol string, q *model.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO quotes
		(timestamp, symbol, price, change, change_percent, volume, is_real_time)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), symbol, q.Price, q.Change, q.ChangePercent,
		q.Volume, boolToInt(q.IsRealTime),
	)
	return err
}

func (r *SQLiteRecorder) RecordPrediction(symbol string, p *model.PredictionResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO predictions
		(timestamp, symbol, model, horizon_days, current_price, predicted_price, change_percent, confidence)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), symbol, p.Model, p.HorizonDays,
		p.CurrentPrice, p.PredictedPrice, p.ChangePercent, p.Confidence,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
