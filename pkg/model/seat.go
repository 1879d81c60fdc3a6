package model

import (
	"context"
	"time"

	"fivehundred-server/pkg/db"
)

const seatColumns = `
tables_players.id,
tables_players.player_id,
tables_players.table_uuid,
tables_players.is_table_admin,
tables_players.active,
tables_players.created,
tables_players.updated`

// Seat represents a row in the tables_players table
type Seat struct {
	Player       *Player   `json:"player"`
	PlayerID     int64     `json:"playerId"`
	TableUUID    string    `json:"tableUuid"`
	ID           int64     `json:"id"`
	IsTableAdmin bool      `json:"isTableAdmin"`
	Active       bool      `json:"active"`
	Created      time.Time `json:"created"`
	Updated      time.Time `json:"updated"`
}

func getSeatByRow(row db.Scanner) (*Seat, error) {
	var p Player
	var s Seat

	if err := row.Scan(&p.ID, &p.Email, &p.DisplayName, &p.IsSiteAdmin, &p.passwordHash, &p.Created, &p.Updated,
		&s.ID, &s.PlayerID, &s.TableUUID, &s.IsTableAdmin, &s.Active, &s.Created, &s.Updated); err != nil {
		return nil, err
	}

	s.Player = &p

	return &s, nil
}

// SetActive sets the active state for the seat in the database
func (s *Seat) SetActive(ctx context.Context, active bool) error {
	const query = `
UPDATE tables_players
SET active = $1, updated = (NOW() AT TIME ZONE 'UTC')
WHERE id = $2`
	execContext, err := db.Instance().ExecContext(ctx, query, active, s.ID)
	if err != nil {
		return err
	}

	if ra, _ := execContext.RowsAffected(); ra > 0 {
		s.Active = active
	}

	return nil
}

// Save will persist seat permissions
func (s *Seat) Save(ctx context.Context) error {
	const query = `
UPDATE tables_players
SET is_table_admin = $1, updated = (NOW() AT TIME ZONE 'utc')
WHERE id = $2`

	_, err := db.Instance().ExecContext(ctx, query, s.IsTableAdmin, s.ID)
	return err
}
