package models

import "time"

type WhitelistEntry struct {
	ID        int64      `db:"id"`
	Email     string     `db:"email"`
	CreatedAt *time.Time `db:"created_at"`
}
