package model

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"fivehundred-server/pkg/db"

	"github.com/sirupsen/logrus"
)

// Game is a record in the `games` table
type Game struct {
	ID        int64
	TableUUID string
	GameType  string
	data      interface{}
	Created   time.Time
	Ended     time.Time
}

const gamesColumns = `id, table_uuid, game_type, data, created, ended`

// GameByID returns a game object by its ID
func GameByID(ctx context.Context, id int64) (*Game, error) {
	const query = `
SELECT ` + gamesColumns + `
FROM games
WHERE id = $1`
	row := db.Instance().QueryRowContext(ctx, query, id)
	return gameByRow(row)
}

func gameByRow(row *sql.Row) (*Game, error) {
	var g Game
	var data []byte
	var ended sql.NullTime

	if err := row.Scan(&g.ID, &g.TableUUID, &g.GameType, &data, &g.Created, &ended); err != nil {
		return nil, err
	}

	if data != nil {
		if err := json.Unmarshal(data, &g.data); err != nil {
			return nil, err
		}
	}

	g.Ended = ended.Time

	return &g, nil
}

// EndGame will end the game, set the final game data, and record each player's score
func (g *Game) EndGame(ctx context.Context, data interface{}, scores map[int64]int) error {
	tx, err := db.Instance().BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	commit := false
	defer func() {
		if !commit {
			if err := tx.Rollback(); err != nil {
				logrus.WithError(err).Error("could not rollback transaction")
			}
			return
		}

		if err := tx.Commit(); err != nil {
			logrus.WithError(err).Error("could not commit transaction")
		}
	}()

	g.data = data
	const query = `
UPDATE games
SET data = $1, ended = NOW() AT TIME ZONE 'UTC'
WHERE id = $2
RETURNING ended`

	b, err := json.Marshal(data)
	if err != nil {
		return err
	}

	row := tx.QueryRowContext(ctx, query, b, g.ID)
	var ended time.Time
	if err := row.Scan(&ended); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO game_scores (game_id, player_id, score)
VALUES ($1, $2, $3)`)
	if err != nil {
		return err
	}

	for playerID, score := range scores {
		if _, err := stmt.ExecContext(ctx, g.ID, playerID, score); err != nil {
			return err
		}
	}

	commit = true
	g.Ended = ended
	return nil
}

// PlayerScore is a player's final score in a completed game
type PlayerScore struct {
	PlayerID int64 `json:"playerId"`
	Score    int   `json:"score"`
}

// GetScores returns the recorded scores for the game
func (g *Game) GetScores(ctx context.Context) ([]*PlayerScore, error) {
	const query = `
SELECT player_id, score
FROM game_scores
WHERE game_id = $1
ORDER BY player_id`

	rows, err := db.Instance().QueryContext(ctx, query, g.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*PlayerScore, 0)
	for rows.Next() {
		var ps PlayerScore
		if err := rows.Scan(&ps.PlayerID, &ps.Score); err != nil {
			return nil, err
		}

		records = append(records, &ps)
	}

	return records, nil
}
