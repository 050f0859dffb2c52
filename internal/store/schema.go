package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS profile (
    id                   INTEGER PRIMARY KEY CHECK (id = 1),
    gender               TEXT NOT NULL,
    age                  INTEGER NOT NULL,
    weight_kg            REAL NOT NULL,
    height_cm            REAL NOT NULL,
    activity_level       TEXT NOT NULL,
    goal                 TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS food_entries (
    id                   TEXT PRIMARY KEY,
    name                 TEXT NOT NULL,
    calories             INTEGER NOT NULL,
    protein_g            REAL NOT NULL DEFAULT 0,
    carbs_g              REAL NOT NULL DEFAULT 0,
    fat_g                REAL NOT NULL DEFAULT 0,
    entry_date           TEXT NOT NULL,
    entry_time           TEXT,
    image_url            TEXT,
    source               TEXT,
    created_at           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_food_entries_date ON food_entries(entry_date);
`
