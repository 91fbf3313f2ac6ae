package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"PriceProphet/internal/model"
)

// PostgresRecorder persists forecast runs to a PostgreSQL database.
type PostgresRecorder struct {
	db *sql.DB
}

// NewPostgresRecorder connects to Postgres and runs migrations.
func NewPostgresRecorder(dsn string) (*PostgresRecorder, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	r := &PostgresRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Println("[INFO] postgres recorder connected")
	return r, nil
}

func (r *PostgresRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS forecasts (
			id                  SERIAL PRIMARY KEY,
			timestamp           BIGINT NOT NULL,
			ticker              TEXT NOT NULL,
			current_price       DOUBLE PRECISION,
			mu                  DOUBLE PRECISION,
			sigma               DOUBLE PRECISION,
			num_paths           INTEGER,
			forecast_days       INTEGER,
			mean_price          DOUBLE PRECISION,
			median_price        DOUBLE PRECISION,
			std_dev             DOUBLE PRECISION,
			min_price           DOUBLE PRECISION,
			max_price           DOUBLE PRECISION,
			percentile_5        DOUBLE PRECISION,
			percentile_25       DOUBLE PRECISION,
			percentile_75       DOUBLE PRECISION,
			percentile_95       DOUBLE PRECISION,
			prob_above_current  DOUBLE PRECISION,
			prob_above_mean     DOUBLE PRECISION,
			prob_within_one_std DOUBLE PRECISION,
			skewness            DOUBLE PRECISION,
			excess_kurtosis     DOUBLE PRECISION,
			modal_low           DOUBLE PRECISION,
			modal_high          DOUBLE PRECISION,
			risk_reward         DOUBLE PRECISION
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
func (r *PostgresRecorder) RecordForecast(rep *model.ForecastReport) error {
	s := rep.Summary
	_, err := r.db.Exec(`INSERT INTO forecasts
		(timestamp, ticker, current_price, mu, sigma, num_paths, forecast_days,
		 mean_price, median_price, std_dev, min_price, max_price,
		 percentile_5, percentile_25, percentile_75, percentile_95,
		 prob_above_current, prob_above_mean, prob_within_one_std,
		 skewness, excess_kurtosis, modal_low, modal_high, risk_reward)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)`,
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

func (r *PostgresRecorder) Close() error {
	log.Println("[INFO] closing postgres recorder")
	return r.db.Close()
}
