package storage

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/mua-studio-api/infrastructure/database/postgres"
)

const slotsTable = "store_slots"

// CreateSlotsTableSQL cria a tabela usada pelo PostgresBackend
const CreateSlotsTableSQL = `CREATE TABLE IF NOT EXISTS store_slots (
	slot       TEXT PRIMARY KEY,
	payload    BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresBackend guarda cada slot como uma linha da tabela store_slots
type PostgresBackend struct {
	conn *postgres.Connection
}

func NewPostgresBackend(conn *postgres.Connection) *PostgresBackend {
	return &PostgresBackend{
		conn: conn,
	}
}

// Migrate garante que a tabela de slots exista
func (p *PostgresBackend) Migrate() error {
	_, err := p.conn.Exec(CreateSlotsTableSQL)
	return errors.Wrap(err, "creating store_slots table")
}

func (p *PostgresBackend) Get(slot string) ([]byte, bool, error) {
	slotSQL, slotArgs, err := squirrel.
		Select("payload").
		From(slotsTable).
		Where(squirrel.Eq{"slot": slot}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, false, err
	}

	var payload []byte
	err = p.conn.QueryRow(slotSQL, slotArgs...).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "reading slot %s", slot)
	}

	return payload, true, nil
}

func upsertSlot(slot string, payload []byte) (string, []interface{}, error) {
	return squirrel.
		Insert(slotsTable).
		Columns("slot", "payload", "updated_at").
		Values(slot, payload, squirrel.Expr("now()")).
		Suffix("ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (p *PostgresBackend) Set(slot string, payload []byte) error {
	slotSQL, slotArgs, err := upsertSlot(slot, payload)
	if err != nil {
		return err
	}

	_, err = p.conn.Exec(slotSQL, slotArgs...)
	return errors.Wrapf(err, "writing slot %s", slot)
}

// SetMany grava vários slots numa única transação: ou todos são gravados ou nenhum
func (p *PostgresBackend) SetMany(ctx context.Context, slots map[string][]byte) error {
	return p.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for slot, payload := range slots {
			slotSQL, slotArgs, err := upsertSlot(slot, payload)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, slotSQL, slotArgs...); err != nil {
				return errors.Wrapf(err, "writing slot %s", slot)
			}
		}
		return nil
	})
}

func (p *PostgresBackend) Delete(slot string) error {
	slotSQL, slotArgs, err := squirrel.
		Delete(slotsTable).
		Where(squirrel.Eq{"slot": slot}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = p.conn.Exec(slotSQL, slotArgs...)
	return errors.Wrapf(err, "deleting slot %s", slot)
}

func (p *PostgresBackend) Close() error {
	return p.conn.Close()
}
