package model

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fivehundred-server/pkg/db"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// tableCreationCoolDown is how long non-admins must wait before creating another table
const tableCreationCoolDown = time.Minute

const tableColumns = `
tables.uuid,
tables.name,
tables.player_id,
tables.created`

// Table is a five hundred table
// A table has three to six players and can play many games
type Table struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
	// PlayerID is who created the table
	PlayerID int64     `json:"playerId"`
	Created  time.Time `json:"created"`
}

// ErrPlayerNotAtTable happens when user is not a member of the table
var ErrPlayerNotAtTable = errors.New("player is not a member of the table")

// CreateTable creates a new table
func (p *Player) CreateTable(ctx context.Context, name string) (*Table, error) {
	if err := p.canCreateTable(ctx); err != nil {
		return nil, err
	}

	tx, err := db.Instance().BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	u := uuid.New().String()
	const query = `
INSERT INTO tables (uuid, name, player_id)
VALUES ($1, $2, $3)
RETURNING created
`
	var created time.Time
	row := tx.QueryRowContext(ctx, query, u, name, p.ID)
	if err := row.Scan(&created); err != nil {
		rollback(tx)
		return nil, err
	}

	const query2 = `
INSERT INTO tables_players (player_id, table_uuid, is_table_admin)
VALUES ($1, $2, true)`
	if _, err = tx.ExecContext(ctx, query2, p.ID, u); err != nil {
		rollback(tx)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &Table{
		UUID:     u,
		Name:     name,
		Created:  created,
		PlayerID: p.ID,
	}, nil
}

// canCreateTable will see if the user is allowed to create a table
// returns nil if the user can create a table
func (p *Player) canCreateTable(ctx context.Context) error {
	// site admins can always create a table
	if p.IsSiteAdmin {
		return nil
	}

	const query = `
SELECT COUNT(*)
FROM tables
WHERE player_id = $1
  AND created >= $2 AT TIME ZONE 'UTC'`

	row := db.Instance().QueryRowContext(ctx, query, p.ID, time.Now().In(time.UTC).Add(tableCreationCoolDown*-1))
	var count int
	if err := row.Scan(&count); err != nil {
		return err
	}

	if count > 0 {
		return UserError("you must wait before you create another table")
	}

	return nil
}

func getTableByRow(row db.Scanner) (*Table, error) {
	var t Table
	if err := row.Scan(&t.UUID, &t.Name, &t.PlayerID, &t.Created); err != nil {
		return nil, err
	}

	return &t, nil
}

// GetTables returns a list of tables
func GetTables(ctx context.Context, offset int64, limit int) ([]*Table, error) {
	const query = `
SELECT ` + tableColumns + `
FROM tables
ORDER BY tables.created DESC
OFFSET $1
LIMIT $2`

	rows, err := db.Instance().QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*Table, 0)
	for rows.Next() {
		tbl, err := getTableByRow(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, tbl)
	}

	return records, nil
}

// GetTableByUUID returns a table by its UUID
func GetTableByUUID(ctx context.Context, uuid string) (*Table, error) {
	const query = `
SELECT ` + tableColumns + `
FROM tables
WHERE uuid = $1`

	row := db.Instance().QueryRowContext(ctx, query, uuid)
	return getTableByRow(row)
}

// Reload will refresh the data from the database
func (t *Table) Reload(ctx context.Context) error {
	tbl, err := GetTableByUUID(ctx, t.UUID)
	if err != nil {
		return err
	}

	*t = *tbl
	return nil
}

// GetSeats returns all players at the table in join order
func (t *Table) GetSeats(ctx context.Context) ([]*Seat, error) {
	const query = `
SELECT ` + playerColumns + `, ` + seatColumns + `
FROM tables_players
INNER JOIN players ON tables_players.player_id = players.id
WHERE tables_players.table_uuid = $1
ORDER BY tables_players.id`

	rows, err := db.Instance().QueryContext(ctx, query, t.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*Seat, 0)
	for rows.Next() {
		s, err := getSeatByRow(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, s)
	}

	return records, nil
}

// GetActiveSeats returns the active players at the table in join order
func (t *Table) GetActiveSeats(ctx context.Context) ([]*Seat, error) {
	seats, err := t.GetSeats(ctx)
	if err != nil {
		return nil, err
	}

	activeSeats := make([]*Seat, 0, len(seats))
	for _, seat := range seats {
		if seat.Active {
			activeSeats = append(activeSeats, seat)
		}
	}

	return activeSeats, nil
}

// CreateGame will create a new game for the table
func (t *Table) CreateGame(ctx context.Context, gameType string) (*Game, error) {
	const query = `
INSERT INTO games (table_uuid, game_type)
VALUES ($1, $2)
RETURNING ` + gamesColumns

	row := db.Instance().QueryRowContext(ctx, query, t.UUID, gameType)
	return gameByRow(row)
}

// GetGamesCount returns the number of games played by the table
func (t *Table) GetGamesCount(ctx context.Context) (int64, error) {
	const query = `
SELECT COUNT(id)
FROM games
WHERE table_uuid = $1`

	var count int64
	if err := db.Instance().QueryRowContext(ctx, query, t.UUID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		logrus.WithError(err).Error("could not rollback transaction")
	}
}
