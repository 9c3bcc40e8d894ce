package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/urbandepot/parking-service/pkg/metrics"
)

// DefaultStatsInterval период сбора статистики пула соединений
const DefaultStatsInterval = 15 * time.Second

// DB обертка над *sql.DB, замеряющая время запросов
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	name    string
}

// Tx обертка над *sql.Tx с теми же метриками
type Tx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

// WrapWithDefault оборачивает db и запускает сбор статистики пула
// Сбор останавливается при закрытии stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, name string, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, metrics: m, name: name}
	go wrapped.collectStats(DefaultStatsInterval, stopCh)
	return wrapped
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe(query, time.Now())
	res, err := d.db.ExecContext(ctx, query, args...)
	d.countError(query, err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe(query, time.Now())
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.countError(query, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe(query, time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

// BeginTx начинает транзакцию с метриками
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, metrics: d.metrics}, nil
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer observe(t.metrics, query, time.Now())
	res, err := t.tx.ExecContext(ctx, query, args...)
	countError(t.metrics, query, err)
	return res, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer observe(t.metrics, query, time.Now())
	rows, err := t.tx.QueryContext(ctx, query, args...)
	countError(t.metrics, query, err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer observe(t.metrics, query, time.Now())
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

func (d *DB) observe(query string, start time.Time) {
	observe(d.metrics, query, start)
}

func (d *DB) countError(query string, err error) {
	countError(d.metrics, query, err)
}

func observe(m *metrics.Metrics, query string, start time.Time) {
	m.DBQueryDuration.WithLabelValues(operation(query)).Observe(time.Since(start).Seconds())
}

func countError(m *metrics.Metrics, query string, err error) {
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation(query)).Inc()
	}
}

// operation первое слово запроса (SELECT, INSERT, ...) - метка с ограниченной кардинальностью
func operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}

func (d *DB) collectStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		d.recordStats()
		select {
		case <-stopCh:
			return
		case <-ticker.C:
		}
	}
}

func (d *DB) recordStats() {
	stats := d.db.Stats()
	d.metrics.DBOpenConns.WithLabelValues(d.name).Set(float64(stats.OpenConnections))
	d.metrics.DBInUseConns.WithLabelValues(d.name).Set(float64(stats.InUse))
	d.metrics.DBIdleConns.WithLabelValues(d.name).Set(float64(stats.Idle))
	d.metrics.DBWaitCount.WithLabelValues(d.name).Set(float64(stats.WaitCount))
}
