package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/securedesk/secure-desk/internal/logger"
	"github.com/securedesk/secure-desk/models"
)

// recordsTable is the single generic table backing every collection: each
// row is one record with its collection name, owner and flat field map
// serialized as JSON. Sensitive fields arrive here already encrypted, so
// the database only ever sees ciphertext for them.
const recordsTable = "vault_records"

// sqlBackend is the database/sql implementation of [Backend], shared by the
// PostgreSQL and SQLite connectors. Queries are built dynamically with
// squirrel; dialect differences (placeholders, JSON extraction) are resolved
// from the connection's [Dialect].
//
// sqlBackend deliberately does not implement [Watcher]: neither engine is
// wired for push notification here, so count consumers fall back to polling.
type sqlBackend struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLBackend constructs a [Backend] over the given SQL connection.
func NewSQLBackend(db *DB, logger *logger.Logger) Backend {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating sql backend")
	return &sqlBackend{
		db:     db,
		logger: logger,
	}
}

// builder returns a statement builder with the dialect's placeholder format.
func (s *sqlBackend) builder() sq.StatementBuilderType {
	if s.db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// jsonField returns the dialect-specific SQL expression extracting a field
// value from the JSON fields column. Field names come from internal
// constants, never from request input.
func (s *sqlBackend) jsonField(name string) string {
	if s.db.dialect == DialectPostgres {
		return fmt.Sprintf("fields::jsonb ->> '%s'", name)
	}
	return fmt.Sprintf("json_extract(fields, '$.%s')", name)
}

// where translates a [Filter] into squirrel predicates.
func (s *sqlBackend) where(collection string, filter Filter) []sq.Sqlizer {
	conds := []sq.Sqlizer{sq.Eq{"collection": collection}}
	if filter.ID != "" {
		conds = append(conds, sq.Eq{"id": filter.ID})
	}
	if filter.UserID != "" {
		conds = append(conds, sq.Eq{"user_id": filter.UserID})
	}
	for name, value := range filter.Fields {
		conds = append(conds, sq.Expr(s.jsonField(name)+" = ?", value))
	}
	return conds
}

// Insert implements [Backend]. A unique-index violation (the account
// directory's email index) surfaces as [ErrEmailAlreadyExists].
func (s *sqlBackend) Insert(ctx context.Context, collection string, record models.Record) error {
	log := logger.FromContext(ctx)

	fieldsJSON, err := json.Marshal(record.Fields)
	if err != nil {
		return fmt.Errorf("encode record fields: %w", err)
	}

	query, args, err := s.builder().
		Insert(recordsTable).
		Columns("id", "collection", "user_id", "fields", "created_at", "updated_at").
		Values(record.ID, collection, record.UserID, string(fieldsJSON),
			encodeTime(record.CreatedAt), encodeTime(record.UpdatedAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		if s.isUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		log.Err(err).
			Str("func", "sqlBackend.Insert").
			Str("collection", collection).
			Str("id", record.ID).
			Msg("failed to insert record")
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	return nil
}

// Find implements [Backend].
func (s *sqlBackend) Find(ctx context.Context, collection string, filter Filter) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	builder := s.builder().
		Select("id", "user_id", "fields", "created_at", "updated_at").
		From(recordsTable)
	for _, cond := range s.where(collection, filter) {
		builder = builder.Where(cond)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqlBackend.Find").
			Str("collection", collection).
			Str("user_id", filter.UserID).
			Msg("failed to execute select query")
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	defer rows.Close()

	results := make([]models.Record, 0, 16)

	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "sqlBackend.Find").
				Str("collection", collection).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "sqlBackend.Find").
			Str("collection", collection).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// UpdateByID implements [Backend]. Only the field map and updated_at
// change; identity columns stay untouched by construction of the UPDATE.
func (s *sqlBackend) UpdateByID(ctx context.Context, collection, id string, fields map[string]string, updatedAt time.Time) error {
	log := logger.FromContext(ctx)

	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode record fields: %w", err)
	}

	query, args, err := s.builder().
		Update(recordsTable).
		Set("fields", string(fieldsJSON)).
		Set("updated_at", encodeTime(updatedAt)).
		Where(sq.Eq{"collection": collection}).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqlBackend.UpdateByID").
			Str("collection", collection).
			Str("id", id).
			Msg("failed to execute update query")
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// Delete implements [Backend].
func (s *sqlBackend) Delete(ctx context.Context, collection string, filter Filter) (int64, error) {
	log := logger.FromContext(ctx)

	builder := s.builder().Delete(recordsTable)
	for _, cond := range s.where(collection, filter) {
		builder = builder.Where(cond)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqlBackend.Delete").
			Str("collection", collection).
			Str("id", filter.ID).
			Msg("failed to execute delete query")
		return 0, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	return affected, nil
}

// Count implements [Backend].
func (s *sqlBackend) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	log := logger.FromContext(ctx)

	builder := s.builder().Select("COUNT(*)").From(recordsTable)
	for _, cond := range s.where(collection, filter) {
		builder = builder.Where(cond)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "sqlBackend.Count").
			Str("collection", collection).
			Str("user_id", filter.UserID).
			Msg("failed to execute count query")
		return 0, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	return count, nil
}

func (s *sqlBackend) isUniqueViolation(err error) bool {
	if s.db.dialect == DialectPostgres {
		return postgresErrorCode(err) == pgerrcode.UniqueViolation
	}
	return isSQLiteUniqueViolation(err)
}

// scanRecord reads one row of the generic record shape.
func scanRecord(rows *sql.Rows) (models.Record, error) {
	var (
		record     models.Record
		fieldsJSON string
		createdAt  string
		updatedAt  string
	)

	if err := rows.Scan(&record.ID, &record.UserID, &fieldsJSON, &createdAt, &updatedAt); err != nil {
		return models.Record{}, err
	}

	if err := json.Unmarshal([]byte(fieldsJSON), &record.Fields); err != nil {
		return models.Record{}, fmt.Errorf("decode record fields: %w", err)
	}

	var err error
	if record.CreatedAt, err = decodeTime(createdAt); err != nil {
		return models.Record{}, fmt.Errorf("decode created_at: %w", err)
	}
	if record.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return models.Record{}, fmt.Errorf("decode updated_at: %w", err)
	}

	return record, nil
}

// Timestamps are stored as RFC 3339 text in UTC so the column type stays
// portable across both engines.
func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func decodeTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
