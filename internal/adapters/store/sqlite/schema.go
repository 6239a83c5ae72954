package sqlite

const schemaVersion = 1

// Instants are stored as unix nanoseconds, zero meaning unset.
const schema = `
CREATE TABLE IF NOT EXISTS schema_meta (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS petitions (
	id INTEGER PRIMARY KEY,
	action TEXT NOT NULL,
	background TEXT NOT NULL DEFAULT '',
	additional_details TEXT NOT NULL DEFAULT '',
	url TEXT NOT NULL DEFAULT '',
	state TEXT NOT NULL,
	archived INTEGER NOT NULL DEFAULT 0,
	signatures INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL DEFAULT 0,
	updated_at INTEGER NOT NULL DEFAULT 0,
	closed_at INTEGER NOT NULL DEFAULT 0,
	rejected_at INTEGER NOT NULL DEFAULT 0,
	response_threshold_reached_at INTEGER NOT NULL DEFAULT 0,
	debate_threshold_reached_at INTEGER NOT NULL DEFAULT 0,
	polled_at INTEGER NOT NULL DEFAULT 0,
	db_created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_petitions_state ON petitions(state, archived);

CREATE TABLE IF NOT EXISTS records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	petition_id INTEGER NOT NULL REFERENCES petitions(id) ON DELETE CASCADE,
	timestamp INTEGER NOT NULL,
	total INTEGER NOT NULL,
	UNIQUE (petition_id, timestamp)
);

CREATE TABLE IF NOT EXISTS record_locales (
	record_id INTEGER NOT NULL REFERENCES records(id) ON DELETE CASCADE,
	geography TEXT NOT NULL,
	code TEXT NOT NULL,
	name TEXT NOT NULL DEFAULT '',
	count INTEGER NOT NULL,
	PRIMARY KEY (record_id, geography, code)
);
CREATE INDEX IF NOT EXISTS idx_record_locales_lookup ON record_locales(geography, code);

INSERT OR IGNORE INTO schema_meta (id, version) VALUES (1, 1);
`
