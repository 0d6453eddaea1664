package database

// migration is one forward-only schema change. Versions start at 1 and are
// contiguous.
type migration struct {
	version int
	name    string
	sql     string
}

// migrations lists every schema change in the order it is applied.
var migrations = []migration{
	{version: 1, name: "create analyses", sql: migrationV1Analyses},
}

// migrationV1Analyses creates the analyses table.
//
// codes holds the analysed sequence as a JSON array and identifies the
// analysis; analysing the same sequence again updates the row. The form
// columns are NULL when the sequence is not a digital straight line segment.
const migrationV1Analyses = `
CREATE TABLE IF NOT EXISTS analyses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Analysed sequence, e.g. '[365,365,365,366]'
    codes TEXT NOT NULL UNIQUE,

    successful INTEGER NOT NULL CHECK (successful IN (0, 1)),

    -- Quasi-affine form (a, b, r) of the sequence, when successful
    form_a INTEGER,
    form_b INTEGER,
    form_r INTEGER,

    -- Reduction steps as a JSON array of {shear, complement, translate}
    steps TEXT NOT NULL DEFAULT '[]',

    -- Sequence the reduction stopped on
    terminal TEXT NOT NULL DEFAULT '[]',

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now')),

    CHECK (successful = 0 OR (form_a IS NOT NULL AND form_b IS NOT NULL AND form_r IS NOT NULL))
);

CREATE INDEX IF NOT EXISTS idx_analyses_successful
    ON analyses(successful);

CREATE INDEX IF NOT EXISTS idx_analyses_created
    ON analyses(created_at);
`
