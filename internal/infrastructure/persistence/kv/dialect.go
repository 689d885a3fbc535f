package kv

// Dialect carries the driver name and the statements one SQL engine needs to
// serve the kv_store table.
type Dialect struct {
	Name        string
	DriverName  string
	CreateTable string
	SelectValue string
	Upsert      string
	DeleteKey   string
	ListKeys    string
}

var (
	SQLiteDialect = Dialect{
		Name:       "sqlite3",
		DriverName: "sqlite3",
		CreateTable: `CREATE TABLE IF NOT EXISTS kv_store (
    store_key TEXT PRIMARY KEY,
    store_value TEXT NOT NULL,
    updated_at INTEGER NOT NULL
)`,
		SelectValue: `SELECT store_value FROM kv_store WHERE store_key = ?`,
		Upsert: `INSERT INTO kv_store (store_key, store_value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(store_key) DO UPDATE SET store_value = excluded.store_value, updated_at = excluded.updated_at`,
		DeleteKey: `DELETE FROM kv_store WHERE store_key = ?`,
		ListKeys:  `SELECT store_key FROM kv_store ORDER BY store_key`,
	}

	// LibSQLDialect speaks the SQLite grammar over the Turso client.
	LibSQLDialect = Dialect{
		Name:        "libsql",
		DriverName:  "libsql",
		CreateTable: SQLiteDialect.CreateTable,
		SelectValue: SQLiteDialect.SelectValue,
		Upsert:      SQLiteDialect.Upsert,
		DeleteKey:   SQLiteDialect.DeleteKey,
		ListKeys:    SQLiteDialect.ListKeys,
	}

	MySQLDialect = Dialect{
		Name:       "mysql",
		DriverName: "mysql",
		CreateTable: `CREATE TABLE IF NOT EXISTS kv_store (
    store_key VARCHAR(191) NOT NULL PRIMARY KEY,
    store_value LONGTEXT NOT NULL,
    updated_at BIGINT NOT NULL
)`,
		SelectValue: "SELECT store_value FROM kv_store WHERE store_key = ?",
		Upsert: `INSERT INTO kv_store (store_key, store_value, updated_at) VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE store_value = VALUES(store_value), updated_at = VALUES(updated_at)`,
		DeleteKey: "DELETE FROM kv_store WHERE store_key = ?",
		ListKeys:  "SELECT store_key FROM kv_store ORDER BY store_key",
	}

	PostgresDialect = Dialect{
		Name:       "pgx",
		DriverName: "pgx",
		CreateTable: `CREATE TABLE IF NOT EXISTS kv_store (
    store_key TEXT PRIMARY KEY,
    store_value TEXT NOT NULL,
    updated_at BIGINT NOT NULL
)`,
		SelectValue: `SELECT store_value FROM kv_store WHERE store_key = $1`,
		Upsert: `INSERT INTO kv_store (store_key, store_value, updated_at) VALUES ($1, $2, $3)
ON CONFLICT (store_key) DO UPDATE SET store_value = EXCLUDED.store_value, updated_at = EXCLUDED.updated_at`,
		DeleteKey: `DELETE FROM kv_store WHERE store_key = $1`,
		ListKeys:  `SELECT store_key FROM kv_store ORDER BY store_key`,
	}
)

// DialectFor maps a STORAGE_DRIVER value onto its dialect.
func DialectFor(driver string) (Dialect, bool) {
	switch driver {
	case "sqlite3", "sqlite":
		return SQLiteDialect, true
	case "libsql", "turso":
		return LibSQLDialect, true
	case "mysql":
		return MySQLDialect, true
	case "pgx", "postgres":
		return PostgresDialect, true
	}
	return Dialect{}, false
}
