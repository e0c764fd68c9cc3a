package db

// SchemaSQL is the complete schema for fresh quitcard installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All repository
// tests build their in-memory database from GetSchemaSQL(), so a repository
// referencing a column that does not exist here fails immediately with
// "no such column" at test time rather than in a user's home directory.
//
// Captured-at-creation columns: stamp_records.card_capacity stores the
// capacity that was configured when the stamp was placed. Changing the
// target later never rewrites historical rows.
const SchemaSQL = `
-- Stamp records (one row per daily stamp)
CREATE TABLE IF NOT EXISTS stamp_records (
	id TEXT PRIMARY KEY,
	card_index INTEGER NOT NULL CHECK(card_index >= 1),
	stamp_position INTEGER NOT NULL CHECK(stamp_position >= 1),
	card_capacity INTEGER NOT NULL CHECK(card_capacity >= 1),
	stamped_at INTEGER NOT NULL,
	reason TEXT DEFAULT '',
	special INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(card_index, stamp_position)
);

-- Settings (singleton row, id fixed at 1)
CREATE TABLE IF NOT EXISTS app_settings (
	id INTEGER PRIMARY KEY CHECK(id = 1),
	company_name TEXT NOT NULL DEFAULT '',
	theme TEXT NOT NULL DEFAULT '',
	target_stamps INTEGER NOT NULL DEFAULT 0,
	last_acknowledged_card INTEGER NOT NULL DEFAULT 0,
	escalation_count INTEGER NOT NULL DEFAULT 0,
	onboarding_done INTEGER NOT NULL DEFAULT 0,
	target_fund INTEGER NOT NULL DEFAULT 0,
	current_fund INTEGER NOT NULL DEFAULT 0,
	resume_ready INTEGER NOT NULL DEFAULT 0,
	quote_refresh_hours INTEGER NOT NULL DEFAULT 24,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Resignation plan checklist
CREATE TABLE IF NOT EXISTS todo_items (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	done INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Reusable stamp reasons
CREATE TABLE IF NOT EXISTS common_reasons (
	id TEXT PRIMARY KEY,
	text TEXT NOT NULL UNIQUE,
	usage_count INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_stamp_records_card ON stamp_records(card_index);
CREATE INDEX IF NOT EXISTS idx_stamp_records_stamped_at ON stamp_records(stamped_at DESC);
`

// GetSchemaSQL returns the authoritative schema for test setup.
func GetSchemaSQL() string {
	return SchemaSQL
}
