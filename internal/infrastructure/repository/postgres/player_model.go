package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	ID        int64          `db:"id"`
	PublicID  string         `db:"public_id"`
	Name      string         `db:"name"`
	USATTID   sql.NullString `db:"usatt_id"`
	Rating    sql.NullInt64  `db:"rating"`
	Club      sql.NullString `db:"club"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
	DeletedAt *time.Time     `db:"deleted_at"`
}
