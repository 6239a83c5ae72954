// Package sqlite persists polled petitions and signature records in a local
// SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/bnema/petition-tracker/internal/domain"
	"github.com/bnema/petition-tracker/internal/ports"
)

const petitionColumns = `id, action, background, additional_details, url, state, archived, signatures,
	created_at, updated_at, closed_at, rejected_at, response_threshold_reached_at,
	debate_threshold_reached_at, polled_at`

type Store struct {
	db    *sql.DB
	path  string
	clock ports.Clock
}

var _ ports.PetitionStore = (*Store)(nil)

func Open(ctx context.Context, path string, clock ports.Clock) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("store path is required")
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	db.SetMaxOpenConns(1)

	store := &Store{db: db, path: path, clock: clock}
	if err := store.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("initialize store schema: %w", err)
	}

	var version int
	if err := s.db.QueryRowContext(ctx, `SELECT version FROM schema_meta WHERE id = 1`).Scan(&version); err != nil {
		return fmt.Errorf("read store schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("unsupported store schema version %d", version)
	}

	return nil
}

func (s *Store) SavePetition(ctx context.Context, petition domain.Petition) error {
	if petition.ID <= 0 {
		return errors.New("petition id is required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO petitions (`+petitionColumns+`, db_created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			action = excluded.action,
			background = excluded.background,
			additional_details = excluded.additional_details,
			url = excluded.url,
			state = excluded.state,
			archived = excluded.archived,
			signatures = excluded.signatures,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			closed_at = excluded.closed_at,
			rejected_at = excluded.rejected_at,
			response_threshold_reached_at = excluded.response_threshold_reached_at,
			debate_threshold_reached_at = excluded.debate_threshold_reached_at,
			polled_at = excluded.polled_at`,
		int64(petition.ID),
		petition.Action,
		petition.Background,
		petition.AdditionalDetails,
		petition.URL,
		string(petition.State),
		petition.Archived,
		petition.Signatures,
		toUnix(petition.CreatedAt),
		toUnix(petition.UpdatedAt),
		toUnix(petition.ClosedAt),
		toUnix(petition.RejectedAt),
		toUnix(petition.ResponseThresholdReachedAt),
		toUnix(petition.DebateThresholdReachedAt),
		toUnix(petition.PolledAt),
		toUnix(s.clock.Now()),
	)
	if err != nil {
		return fmt.Errorf("save petition %s: %w", petition.ID, err)
	}

	return nil
}

func (s *Store) GetPetition(ctx context.Context, id domain.PetitionID) (domain.Petition, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+petitionColumns+` FROM petitions WHERE id = ?`, int64(id))
	petition, err := scanPetition(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Petition{}, fmt.Errorf("get petition %s: %w", id, domain.ErrPetitionNotFound)
	}
	if err != nil {
		return domain.Petition{}, fmt.Errorf("get petition %s: %w", id, err)
	}

	return petition, nil
}

func (s *Store) HasPetition(ctx context.Context, id domain.PetitionID) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM petitions WHERE id = ?)`, int64(id)).Scan(&exists); err != nil {
		return false, fmt.Errorf("check petition %s: %w", id, err)
	}

	return exists, nil
}

// ListPetitions pages through petitions, most signed first.
func (s *Store) ListPetitions(ctx context.Context, query domain.PetitionListQuery) (domain.PetitionPage, error) {
	query = query.Normalize()

	where := ""
	args := []any{}
	if query.State != "" {
		where = ` WHERE state = ?`
		args = append(args, string(query.State))
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM petitions`+where, args...).Scan(&total); err != nil {
		return domain.PetitionPage{}, fmt.Errorf("count petitions: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+petitionColumns+` FROM petitions`+where+` ORDER BY signatures DESC, id ASC LIMIT ? OFFSET ?`,
		append(args, query.Items, query.Offset())...,
	)
	if err != nil {
		return domain.PetitionPage{}, fmt.Errorf("list petitions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	page := domain.PetitionPage{Index: query.Index, PerPage: query.Items, Total: total}
	for rows.Next() {
		petition, err := scanPetition(rows)
		if err != nil {
			return domain.PetitionPage{}, fmt.Errorf("list petitions: %w", err)
		}
		page.Petitions = append(page.Petitions, petition)
	}
	if err := rows.Err(); err != nil {
		return domain.PetitionPage{}, fmt.Errorf("list petitions: %w", err)
	}

	return page, nil
}

// AddRecord stores a record and its locale breakdown. A second record at the
// same instant replaces the first.
func (s *Store) AddRecord(ctx context.Context, record domain.Record) (err error) {
	if record.Timestamp.IsZero() {
		return errors.New("record timestamp is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin add record: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var recordID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO records (petition_id, timestamp, total) VALUES (?, ?, ?)
		ON CONFLICT (petition_id, timestamp) DO UPDATE SET total = excluded.total
		RETURNING id`,
		int64(record.PetitionID), toUnix(record.Timestamp), record.Total,
	).Scan(&recordID)
	if err != nil {
		return fmt.Errorf("add record for petition %s: %w", record.PetitionID, err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM record_locales WHERE record_id = ?`, recordID); err != nil {
		return fmt.Errorf("replace record locales: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO record_locales (record_id, geography, code, name, count) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare record locales: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, geo := range domain.Geographies {
		for _, entry := range record.Locales[geo] {
			code := domain.NormalizeLocaleCode(entry.Locale.Code)
			if _, err = stmt.ExecContext(ctx, recordID, string(geo), code, entry.Locale.Name, entry.Count); err != nil {
				return fmt.Errorf("add %s %s count: %w", geo, code, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit record: %w", err)
	}

	return nil
}

// Records returns the totals recorded between from and to, oldest first,
// without the locale breakdown.
func (s *Store) Records(ctx context.Context, id domain.PetitionID, from, to time.Time) ([]domain.Record, error) {
	rangeSQL, args := timeRange("timestamp", from, to)
	rows, err := s.db.QueryContext(ctx,
		`SELECT timestamp, total FROM records WHERE petition_id = ?`+rangeSQL+` ORDER BY timestamp ASC`,
		append([]any{int64(id)}, args...)...,
	)
	if err != nil {
		return nil, fmt.Errorf("query records for petition %s: %w", id, err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.Record
	for rows.Next() {
		var timestamp int64
		record := domain.Record{PetitionID: id}
		if err := rows.Scan(&timestamp, &record.Total); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		record.Timestamp = fromUnix(timestamp)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query records for petition %s: %w", id, err)
	}

	return records, nil
}

func (s *Store) LocaleRecords(ctx context.Context, id domain.PetitionID, geo domain.Geography, code string, from, to time.Time) ([]domain.LocaleRecord, error) {
	if !geo.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGeography, geo)
	}

	rangeSQL, args := timeRange("r.timestamp", from, to)
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.timestamp, r.total, l.code, l.name, l.count
		FROM records r
		JOIN record_locales l ON l.record_id = r.id
		WHERE r.petition_id = ? AND l.geography = ? AND l.code = ?`+rangeSQL+`
		ORDER BY r.timestamp ASC`,
		append([]any{int64(id), string(geo), domain.NormalizeLocaleCode(code)}, args...)...,
	)
	if err != nil {
		return nil, fmt.Errorf("query %s %s records: %w", geo, code, err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.LocaleRecord
	for rows.Next() {
		var timestamp int64
		var record domain.LocaleRecord
		if err := rows.Scan(&timestamp, &record.Total, &record.Locale.Code, &record.Locale.Name, &record.Count); err != nil {
			return nil, fmt.Errorf("scan locale record: %w", err)
		}
		record.Timestamp = fromUnix(timestamp)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query %s %s records: %w", geo, code, err)
	}

	return records, nil
}

// LatestRecord returns the newest record with its full locale breakdown.
func (s *Store) LatestRecord(ctx context.Context, id domain.PetitionID) (domain.Record, error) {
	var recordID, timestamp int64
	record := domain.Record{PetitionID: id}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, timestamp, total FROM records WHERE petition_id = ? ORDER BY timestamp DESC LIMIT 1`,
		int64(id),
	).Scan(&recordID, &timestamp, &record.Total)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Record{}, fmt.Errorf("latest record for petition %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Record{}, fmt.Errorf("latest record for petition %s: %w", id, err)
	}
	record.Timestamp = fromUnix(timestamp)

	rows, err := s.db.QueryContext(ctx,
		`SELECT geography, code, name, count FROM record_locales WHERE record_id = ?`,
		recordID,
	)
	if err != nil {
		return domain.Record{}, fmt.Errorf("query record locales: %w", err)
	}
	defer func() { _ = rows.Close() }()

	record.Locales = make(map[domain.Geography][]domain.LocaleCount)
	for rows.Next() {
		var geo string
		var entry domain.LocaleCount
		if err := rows.Scan(&geo, &entry.Locale.Code, &entry.Locale.Name, &entry.Count); err != nil {
			return domain.Record{}, fmt.Errorf("scan record locale: %w", err)
		}
		record.Locales[domain.Geography(geo)] = append(record.Locales[domain.Geography(geo)], entry)
	}
	if err := rows.Err(); err != nil {
		return domain.Record{}, fmt.Errorf("query record locales: %w", err)
	}
	for geo := range record.Locales {
		entries := record.Locales[geo]
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Count != entries[j].Count {
				return entries[i].Count > entries[j].Count
			}
			return entries[i].Locale.Code < entries[j].Locale.Code
		})
	}

	return record, nil
}

// PollTargets lists the open, unarchived petitions the poller should visit.
func (s *Store) PollTargets(ctx context.Context) ([]domain.PetitionID, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM petitions WHERE state = ? AND archived = 0 ORDER BY id ASC`,
		string(domain.PetitionStateOpen),
	)
	if err != nil {
		return nil, fmt.Errorf("query poll targets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []domain.PetitionID
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan poll target: %w", err)
		}
		ids = append(ids, domain.PetitionID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query poll targets: %w", err)
	}

	return ids, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPetition(row rowScanner) (domain.Petition, error) {
	var (
		id, signatures                                             int64
		state                                                      string
		created, updated, closed, rejected, response, debate, poll int64
		petition                                                   domain.Petition
	)
	err := row.Scan(
		&id, &petition.Action, &petition.Background, &petition.AdditionalDetails, &petition.URL,
		&state, &petition.Archived, &signatures,
		&created, &updated, &closed, &rejected, &response, &debate, &poll,
	)
	if err != nil {
		return domain.Petition{}, err
	}

	petition.ID = domain.PetitionID(id)
	petition.State = domain.PetitionState(state)
	petition.Signatures = signatures
	petition.CreatedAt = fromUnix(created)
	petition.UpdatedAt = fromUnix(updated)
	petition.ClosedAt = fromUnix(closed)
	petition.RejectedAt = fromUnix(rejected)
	petition.ResponseThresholdReachedAt = fromUnix(response)
	petition.DebateThresholdReachedAt = fromUnix(debate)
	petition.PolledAt = fromUnix(poll)

	return petition, nil
}

func timeRange(column string, from, to time.Time) (string, []any) {
	var clauses []string
	var args []any
	if !from.IsZero() {
		clauses = append(clauses, column+" >= ?")
		args = append(args, toUnix(from))
	}
	if !to.IsZero() {
		clauses = append(clauses, column+" <= ?")
		args = append(args, toUnix(to))
	}
	if len(clauses) == 0 {
		return "", nil
	}

	return " AND " + strings.Join(clauses, " AND "), args
}

func toUnix(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}

	return value.UnixNano()
}

func fromUnix(value int64) time.Time {
	if value == 0 {
		return time.Time{}
	}

	return time.Unix(0, value).UTC()
}
