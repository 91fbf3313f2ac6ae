package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"PriceProphet/internal/model"
)

// SQLiteRecorder persists forecast runs to a SQLite database.
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
		`CREATE TABLE IF NOT EXISTS forecasts (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp           INTEGER NOT NULL,
			ticker              TEXT NOT NULL,
			current_price       REAL,
			mu                  REAL,
			sigma               REAL,
			num_paths           INTEGER,
			forecast_days       INTEGER,
			mean_price          REAL,
			median_price        REAL,
			std_dev             REAL,
			min_price           REAL,
			max_price           REAL,
			percentile_5        REAL,
			percentile_25       REAL,
			percentile_75       REAL,
			percentile_95       REAL,
			prob_above_current  REAL,
			prob_above_mean     REAL,
			prob_within_one_std REAL,
			skewness            REAL,
			excess_kurtosis     REAL,
			modal_low           REAL,
			modal_high          REAL,
			risk_reward         REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_forecasts_ts ON forecasts(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_forecasts_ticker ON forecasts(ticker)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordForecast inserts one forecast run.
func (r *SQLiteRecorder) RecordForecast(rep *model.ForecastReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := rep.Summary
	_, err := r.db.Exec(`INSERT INTO forecasts
		(timestamp, ticker, current_price, mu, sigma, num_paths, forecast_days,
		 mean_price, median_price, std_dev, min_price, max_price,
		 percentile_5, percentile_25, percentile_75, percentile_95,
		 prob_above_current, prob_above_mean, prob_within_one_std,
		 skewness, excess_kurtosis, modal_low, modal_high, risk_reward)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rep.Ticker, s.CurrentPrice, rep.Params.Mu, rep.Params.Sigma,
		rep.NumPaths, rep.ForecastDays,
		s.Mean, s.Median, s.StdDev, s.Min, s.Max,
		s.Percentile5, s.Percentile25, s.Percentile75, s.Percentile95,
		rep.Probabilities.AboveCurrent, rep.Probabilities.AboveMean, rep.Probabilities.WithinOneStd,
		rep.Shape.Skewness, rep.Shape.ExcessKurtosis,
		rep.ModalBin.Lower, rep.ModalBin.Upper, finiteOrNil(rep.RiskReward.Ratio),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
