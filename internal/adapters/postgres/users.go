package postgres

import (
	"context"

	"tikkeul/internal/domain"
)

func (db *DB) CreateUser(ctx context.Context, u domain.User) error {
	_, err := db.conn.Exec(ctx,
		`INSERT INTO users (username, hashed_password) VALUES ($1, $2)`,
		u.Username, u.HashedPassword,
	)
	return wrapErr(err)
}

func (db *DB) GetUser(ctx context.Context, username string) (domain.User, error) {
	var u domain.User
	err := db.conn.QueryRow(ctx,
		`SELECT username, hashed_password FROM users WHERE username = $1`, username,
	).Scan(&u.Username, &u.HashedPassword)
	return u, wrapErr(err)
}
