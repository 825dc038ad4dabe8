package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database.
// Applied on startup; every statement is idempotent.
// Contributor and transfer rows carry an explicit position so a split
// reads back in the exact order it was written, which the settlement
// engine's determinism depends on.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS splits (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    currency TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    created_by TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS contributors (
    split_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    amount_paid REAL NOT NULL,
    PRIMARY KEY (split_id, position),
    FOREIGN KEY (split_id) REFERENCES splits(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS transfers (
    split_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    from_name TEXT NOT NULL,
    to_name TEXT NOT NULL,
    amount REAL NOT NULL,
    PRIMARY KEY (split_id, position),
    FOREIGN KEY (split_id) REFERENCES splits(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_splits_created_by ON splits(created_by);
CREATE INDEX IF NOT EXISTS idx_contributors_split_id ON contributors(split_id);
CREATE INDEX IF NOT EXISTS idx_transfers_split_id ON transfers(split_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
