package pdo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// Conn wraps a live database handle together with the dialect used for
// metadata queries and the optional error-reporting sink. A Conn holds no
// per-call state: every operation returns its own result and error, so a
// Conn may be shared between goroutines to the extent the underlying pool
// allows.
type Conn struct {
	db      *sqlx.DB
	dialect Dialect
	log     zerolog.Logger

	mu     sync.RWMutex
	sink   ErrorSink
	format Format
}

// Option configures a Conn at construction time.
type Option func(*Conn)

// WithLogger attaches a zerolog logger. The default logger is a no-op.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Conn) { c.log = log }
}

// WithDialect overrides the dialect inferred from the driver name.
func WithDialect(d Dialect) Option {
	return func(c *Conn) { c.dialect = d }
}

// WithErrorCallback installs an error sink at construction time; see
// SetErrorCallback.
func WithErrorCallback(sink ErrorSink, format Format) Option {
	return func(c *Conn) { c.SetErrorCallback(sink, format) }
}

// Open creates a Conn for the given driver and data source name. Like
// sql.Open, the handle is lazy: bad credentials or an unreachable server
// surface on first use, not here. Open fails only for an unregistered
// driver name.
func Open(driver, dsn string, opts ...Option) (*Conn, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s handle: %w", driver, err)
	}
	return NewConn(db, driver, opts...), nil
}

// NewConn wraps an existing sqlx handle. The driver name selects the
// metadata dialect; unknown drivers fall back to information_schema.
func NewConn(db *sqlx.DB, driver string, opts ...Option) *Conn {
	c := &Conn{
		db:      db,
		dialect: DialectFor(driver),
		log:     zerolog.Nop(),
		format:  FormatHTML,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DB exposes the underlying handle for operations outside this package's
// scope (transactions, pool tuning).
func (c *Conn) DB() *sqlx.DB {
	return c.db
}

// Close closes the underlying handle.
func (c *Conn) Close() error {
	return c.db.Close()
}

// Run prepares and executes an arbitrary statement. The bind value is
// normalized via NormalizeBind, so maps, scalars, slices, and nil are all
// accepted. The statement's leading keyword decides the result shape: see
// Classify. On failure the configured error sink is invoked once and a
// wrapped error is returned alongside a zero Result.
func (c *Conn) Run(ctx context.Context, query string, bind any) (Result, error) {
	query = strings.TrimSpace(query)
	args := NormalizeBind(bind)
	kind := Classify(query)

	c.log.Debug().Str("sql", query).Msg("executing statement")

	var (
		res = Result{Kind: kind}
		err error
	)
	switch kind {
	case KindRows:
		res.Rows, err = c.queryRows(ctx, query, args)
	case KindCount:
		res.Affected, err = c.execCount(ctx, query, args)
	default:
		err = c.execOnly(ctx, query, args)
	}
	if err != nil {
		c.report(err, query, args)
		c.log.Error().Err(err).Str("sql", query).Msg("statement failed")
		return Result{}, fmt.Errorf("execute statement: %w", err)
	}
	return res, nil
}

// Select reads rows from table, optionally restricted by a raw WHERE
// fragment and its bind values. Fields defaults to "*"; multiple fields are
// joined with commas. The where and field fragments are interpolated
// verbatim (see package docs on the parameterization boundary).
func (c *Conn) Select(ctx context.Context, table, where string, bind any, fields ...string) ([]Row, error) {
	expr := "*"
	if len(fields) > 0 {
		expr = strings.Join(fields, ", ")
	}
	res, err := c.Run(ctx, BuildSelect(table, where, expr), bind)
	if err != nil {
		return nil, err
	}
	return res.Rows, nil
}

// Insert writes one row built from values, keeping only the keys that are
// real columns of table (in metadata order), and returns the affected-row
// count. If the column filter comes back empty the generated statement is
// malformed and the driver's rejection is returned as the error.
func (c *Conn) Insert(ctx context.Context, table string, values map[string]any) (int64, error) {
	columns := c.TableColumns(ctx, table, values)
	bind := make(BindMap, len(columns))
	for _, col := range columns {
		bind[col] = values[col]
	}
	res, err := c.Run(ctx, BuildInsert(table, columns), bind)
	if err != nil {
		return 0, err
	}
	return res.Affected, nil
}

// Update rewrites the filtered columns of the rows matching where and
// returns the affected-row count. SET placeholders are prefixed with
// UpdatePrefix, so the caller's where-bind map never collides with them.
// The where bind must be a named map (or empty); positional values cannot
// be mixed with the named SET clause.
func (c *Conn) Update(ctx context.Context, table string, values map[string]any, where string, bind any) (int64, error) {
	args := NormalizeBind(bind)
	if len(args.Positional) > 0 {
		return 0, fmt.Errorf("update %s: positional where binds are not supported, use a named map", table)
	}

	columns := c.TableColumns(ctx, table, values)
	set := make(BindMap, len(columns))
	for _, col := range columns {
		set[UpdatePrefix+col] = values[col]
	}

	res, err := c.Run(ctx, BuildUpdate(table, columns, where), args.merged(set))
	if err != nil {
		return 0, err
	}
	return res.Affected, nil
}

// Delete removes the rows matching where and returns the affected-row count.
func (c *Conn) Delete(ctx context.Context, table, where string, bind any) (int64, error) {
	res, err := c.Run(ctx, BuildDelete(table, where), bind)
	if err != nil {
		return 0, err
	}
	return res.Affected, nil
}

func (c *Conn) queryRows(ctx context.Context, query string, args BindArgs) ([]Row, error) {
	var (
		rows *sqlx.Rows
		err  error
	)
	if len(args.Named) > 0 {
		rows, err = c.db.NamedQueryContext(ctx, query, map[string]any(args.Named))
	} else {
		rows, err = c.db.QueryxContext(ctx, query, args.Positional...)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		m := map[string]any{}
		if err := rows.MapScan(m); err != nil {
			return nil, err
		}
		out = append(out, Row(m))
	}
	return out, rows.Err()
}

func (c *Conn) execCount(ctx context.Context, query string, args BindArgs) (int64, error) {
	res, err := c.exec(ctx, query, args)
	if err != nil {
		return 0, err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("affected rows: %w", err)
	}
	return count, nil
}

func (c *Conn) execOnly(ctx context.Context, query string, args BindArgs) error {
	_, err := c.exec(ctx, query, args)
	return err
}

func (c *Conn) exec(ctx context.Context, query string, args BindArgs) (sql.Result, error) {
	if len(args.Named) > 0 {
		return c.db.NamedExecContext(ctx, query, map[string]any(args.Named))
	}
	return c.db.ExecContext(ctx, query, args.Positional...)
}
