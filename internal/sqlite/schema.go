package sqlite

// Schema DDL for the cereals table. The id is assigned by SQLite; the
// (name, mfr, type_) triple is the natural key that makes the startup
// bulk load idempotent via INSERT OR IGNORE.
const createCereals = `CREATE TABLE IF NOT EXISTS cereals (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    mfr TEXT NOT NULL,
    type_ TEXT NOT NULL,
    calories INTEGER NOT NULL DEFAULT 0,
    protein INTEGER NOT NULL DEFAULT 0,
    fat INTEGER NOT NULL DEFAULT 0,
    sodium INTEGER NOT NULL DEFAULT 0,
    fiber REAL NOT NULL DEFAULT 0,
    carbo REAL NOT NULL DEFAULT 0,
    sugars INTEGER NOT NULL DEFAULT 0,
    potass INTEGER NOT NULL DEFAULT 0,
    vitamins INTEGER NOT NULL DEFAULT 0,
    shelf INTEGER NOT NULL DEFAULT 0,
    weight REAL NOT NULL DEFAULT 0,
    cups REAL NOT NULL DEFAULT 0,
    rating REAL NOT NULL DEFAULT 0,
    UNIQUE (name, mfr, type_)
);`

// cerealColumns lists the non-id columns in canonical bind order, shared by
// the insert and update statements.
var cerealColumns = []string{
	"name", "mfr", "type_", "calories", "protein", "fat", "sodium",
	"fiber", "carbo", "sugars", "potass", "vitamins", "shelf",
	"weight", "cups", "rating",
}

// columnForField maps filterable field names to their column names. The
// type field is suffixed in SQL to stay clear of the keyword.
var columnForField = map[string]string{
	"name":     "name",
	"mfr":      "mfr",
	"type":     "type_",
	"calories": "calories",
	"protein":  "protein",
	"fat":      "fat",
	"sodium":   "sodium",
	"fiber":    "fiber",
	"carbo":    "carbo",
	"sugars":   "sugars",
	"potass":   "potass",
	"vitamins": "vitamins",
	"shelf":    "shelf",
	"weight":   "weight",
	"cups":     "cups",
	"rating":   "rating",
}
