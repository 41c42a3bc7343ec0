package db

const schemaUsersSQLite = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`

// tags holds a JSON array of strings.
const schemaCatalogItemsSQLite = `
CREATE TABLE IF NOT EXISTS catalog_items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    tags TEXT NOT NULL DEFAULT '[]',
    image_url_1 TEXT NOT NULL,
    image_url_2 TEXT NOT NULL,
    image_url_3 TEXT NOT NULL,
    external_link TEXT NOT NULL,
    position INTEGER NOT NULL
);
`

const schemaUsersPostgres = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`

const schemaCatalogItemsPostgres = `
CREATE TABLE IF NOT EXISTS catalog_items (
    id SERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    tags TEXT[] NOT NULL DEFAULT '{}',
    image_url_1 TEXT NOT NULL,
    image_url_2 TEXT NOT NULL,
    image_url_3 TEXT NOT NULL,
    external_link TEXT NOT NULL,
    position INTEGER NOT NULL
);
`

const schemaCatalogOrderIndex = `
CREATE INDEX IF NOT EXISTS catalog_items_order_idx ON catalog_items (position DESC, id DESC);
`

const schemaCatalogTagsIndexPostgres = `
CREATE INDEX IF NOT EXISTS catalog_items_tags_idx ON catalog_items USING GIN (tags);
`

func schemaFor(d Dialect) []string {
	if d == Postgres {
		return []string{
			schemaUsersPostgres,
			schemaCatalogItemsPostgres,
			schemaCatalogOrderIndex,
			schemaCatalogTagsIndexPostgres,
		}
	}
	return []string{
		schemaUsersSQLite,
		schemaCatalogItemsSQLite,
		schemaCatalogOrderIndex,
	}
}
