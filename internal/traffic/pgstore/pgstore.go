// Package pgstore implements traffic.Storage on PostgreSQL.
//
// Uniqueness per fingerprint is a table constraint. Create inserts with
// ON CONFLICT DO NOTHING, so a losing concurrent insert writes nothing and
// reports traffic.ErrDuplicateFingerprint. IncrementVisits is a single
// UPDATE, atomic under concurrent callers.
package pgstore

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/landingkit/trafficid/internal/traffic"
	"github.com/landingkit/trafficid/pkg/pg"
)

// Migrations holds the goose migrations for the traffic_records table.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations passed to pg.Migrate.
const MigrationsDir = "migrations"

// DB is the subset of *pgxpool.Pool and pgx.Tx the store needs.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Storage is a PostgreSQL traffic.Storage.
type Storage struct {
	db DB
}

var _ traffic.Storage = (*Storage)(nil)

// New creates a Storage on db.
func New(db DB) *Storage {
	return &Storage{db: db}
}

const recordColumns = `id, fingerprint, first_seen, visit_count, device_type, browser, os,
	source, medium, campaign_id, campaign_name, term, content, platform, channel, click_id,
	country, region, city, postal, is_bot, bot_name, bot_category,
	path, host, referrer, sub1, sub2, sub3, sub4, query_params, created_at`

func scanRecord(row pgx.Row) (*traffic.Record, error) {
	var rec traffic.Record
	err := row.Scan(
		&rec.ID,
		&rec.Fingerprint,
		&rec.FirstSeen,
		&rec.VisitCount,
		&rec.DeviceType,
		&rec.Browser,
		&rec.OS,
		&rec.Source,
		&rec.Medium,
		&rec.CampaignID,
		&rec.CampaignName,
		&rec.Term,
		&rec.Content,
		&rec.Platform,
		&rec.Channel,
		&rec.ClickID,
		&rec.Country,
		&rec.Region,
		&rec.City,
		&rec.Postal,
		&rec.IsBot,
		&rec.BotName,
		&rec.BotCategory,
		&rec.Path,
		&rec.Host,
		&rec.Referrer,
		&rec.Sub1,
		&rec.Sub2,
		&rec.Sub3,
		&rec.Sub4,
		&rec.QueryParams,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.FirstSeen = rec.FirstSeen.UTC()
	rec.CreatedAt = rec.CreatedAt.UTC()
	return &rec, nil
}

func (s *Storage) GetByFingerprint(ctx context.Context, fingerprint string) (*traffic.Record, error) {
	rec, err := scanRecord(s.db.QueryRow(ctx,
		`SELECT `+recordColumns+` FROM traffic_records WHERE fingerprint = $1`, fingerprint))
	if pg.IsNotFoundError(err) {
		return nil, traffic.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select traffic record: %w", err)
	}
	return rec, nil
}

func (s *Storage) Create(ctx context.Context, rec *traffic.Record) (*traffic.Record, error) {
	query := `
		INSERT INTO traffic_records (` + recordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32)
		ON CONFLICT (fingerprint) DO NOTHING
		RETURNING ` + recordColumns

	params := rec.QueryParams
	if params == nil {
		params = map[string]string{}
	}

	created, err := scanRecord(s.db.QueryRow(ctx, query,
		rec.ID, rec.Fingerprint, rec.FirstSeen, rec.VisitCount, rec.DeviceType, rec.Browser, rec.OS,
		rec.Source, rec.Medium, rec.CampaignID, rec.CampaignName, rec.Term, rec.Content,
		rec.Platform, rec.Channel, rec.ClickID,
		rec.Country, rec.Region, rec.City, rec.Postal, rec.IsBot, rec.BotName, rec.BotCategory,
		rec.Path, rec.Host, rec.Referrer, rec.Sub1, rec.Sub2, rec.Sub3, rec.Sub4,
		params, rec.CreatedAt,
	))
	// no row back means the conflict clause swallowed the insert
	if pg.IsNotFoundError(err) || pg.IsDuplicateKeyError(err) {
		return nil, traffic.ErrDuplicateFingerprint
	}
	if err != nil {
		return nil, fmt.Errorf("insert traffic record: %w", err)
	}
	return created, nil
}

func (s *Storage) IncrementVisits(ctx context.Context, fingerprint string) (*traffic.Record, error) {
	rec, err := scanRecord(s.db.QueryRow(ctx, `
		UPDATE traffic_records
		SET visit_count = visit_count + 1
		WHERE fingerprint = $1
		RETURNING `+recordColumns, fingerprint))
	if pg.IsNotFoundError(err) {
		return nil, traffic.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("increment visit count: %w", err)
	}
	return rec, nil
}

// DeleteAll removes every record. It exists for integration tests.
func (s *Storage) DeleteAll(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DELETE FROM traffic_records`)
	return err
}
