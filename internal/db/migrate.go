package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so the
// full list re-runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS substances (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		triple_t           REAL NOT NULL CHECK(triple_t > 0),
		triple_p           REAL NOT NULL CHECK(triple_p > 0),
		critical_t         REAL NOT NULL CHECK(critical_t > triple_t),
		critical_p         REAL NOT NULL CHECK(critical_p > 0),
		enthalpy_melt      REAL NOT NULL CHECK(enthalpy_melt > 0),
		enthalpy_sub       REAL NOT NULL CHECK(enthalpy_sub > 0),
		enthalpy_vap       REAL NOT NULL CHECK(enthalpy_vap > 0),
		volume_melt        REAL NOT NULL CHECK(volume_melt != 0),
		antoine_triple_a   REAL NOT NULL,
		antoine_triple_b   REAL NOT NULL,
		antoine_triple_c   REAL NOT NULL,
		antoine_critical_a REAL NOT NULL,
		antoine_critical_b REAL NOT NULL,
		antoine_critical_c REAL NOT NULL,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_substances_name
		ON substances(name COLLATE NOCASE)`,

	// Seed preset substances. Parameter values are NIST fits; Antoine
	// coefficients are the log10(P/bar), T/K form.
	`INSERT OR IGNORE INTO substances (
		id, name,
		triple_t, triple_p, critical_t, critical_p,
		enthalpy_melt, enthalpy_sub, enthalpy_vap, volume_melt,
		antoine_triple_a, antoine_triple_b, antoine_triple_c,
		antoine_critical_a, antoine_critical_b, antoine_critical_c,
		created_at, updated_at
	) VALUES (
		'5f67a1f2-0b43-4a44-9f27-5f2a9f0c0001', 'water',
		273.16, 611.657, 647.096, 22064000,
		6010, 51060, 40660, -1.63,
		4.6543, 1435.264, -64.848,
		3.55959, 643.748, -198.043,
		'2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z'
	)`,

	`INSERT OR IGNORE INTO substances (
		id, name,
		triple_t, triple_p, critical_t, critical_p,
		enthalpy_melt, enthalpy_sub, enthalpy_vap, volume_melt,
		antoine_triple_a, antoine_triple_b, antoine_triple_c,
		antoine_critical_a, antoine_critical_b, antoine_critical_c,
		created_at, updated_at
	) VALUES (
		'5f67a1f2-0b43-4a44-9f27-5f2a9f0c0002', 'carbon dioxide',
		216.58, 518500, 304.13, 7377000,
		9020, 25200, 16500, 5.3,
		6.81228, 1301.679, -3.494,
		6.81228, 1301.679, -3.494,
		'2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z'
	)`,
}
