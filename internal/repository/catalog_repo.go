package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"catalog_service/internal/models"
	"catalog_service/internal/repository/db"

	"github.com/jmoiron/sqlx"
)

// catalogQueries holds the dialect-specific statements. All of them use '?'
// placeholders and go through sqlx Rebind before execution.
type catalogQueries struct {
	// lockItems serializes position assignment; empty when the store already
	// allows a single writer.
	lockItems    string
	insertItem   string
	countAll     string
	countByTag   string
	listAll      string
	listByTag    string
	distinctTags string
}

const (
	itemOrderAndPage = ` ORDER BY position DESC, id DESC LIMIT ? OFFSET ?`

	sqliteItemColumns  = `SELECT id, title, tags, image_url_1, image_url_2, image_url_3, external_link, position FROM catalog_items`
	sqliteTagCondition = ` WHERE EXISTS (SELECT 1 FROM json_each(catalog_items.tags) WHERE json_each.value = ?)`

	postgresItemColumns  = `SELECT id, title, CAST(array_to_json(tags) AS TEXT) AS tags, image_url_1, image_url_2, image_url_3, external_link, position FROM catalog_items`
	postgresTagCondition = ` WHERE CAST(? AS TEXT) = ANY(tags)`
)

var sqliteCatalogQueries = catalogQueries{
	insertItem: `INSERT INTO catalog_items (title, tags, image_url_1, image_url_2, image_url_3, external_link, position)
SELECT ?, ?, ?, ?, ?, ?, COALESCE(MAX(position), 0) + 1 FROM catalog_items
RETURNING id`,
	countAll:     `SELECT COUNT(*) FROM catalog_items`,
	countByTag:   `SELECT COUNT(*) FROM catalog_items` + sqliteTagCondition,
	listAll:      sqliteItemColumns + itemOrderAndPage,
	listByTag:    sqliteItemColumns + sqliteTagCondition + itemOrderAndPage,
	distinctTags: `SELECT DISTINCT json_each.value AS tag FROM catalog_items, json_each(catalog_items.tags) ORDER BY tag`,
}

var postgresCatalogQueries = catalogQueries{
	lockItems: `LOCK TABLE catalog_items IN SHARE ROW EXCLUSIVE MODE`,
	insertItem: `INSERT INTO catalog_items (title, tags, image_url_1, image_url_2, image_url_3, external_link, position)
SELECT CAST(? AS TEXT), ARRAY(SELECT json_array_elements_text(CAST(? AS JSON))), CAST(? AS TEXT), CAST(? AS TEXT), CAST(? AS TEXT), CAST(? AS TEXT), COALESCE(MAX(position), 0) + 1 FROM catalog_items
RETURNING id`,
	countAll:     `SELECT COUNT(*) FROM catalog_items`,
	countByTag:   `SELECT COUNT(*) FROM catalog_items` + postgresTagCondition,
	listAll:      postgresItemColumns + itemOrderAndPage,
	listByTag:    postgresItemColumns + postgresTagCondition + itemOrderAndPage,
	distinctTags: `SELECT DISTINCT unnest(tags) AS tag FROM catalog_items ORDER BY tag`,
}

func queriesFor(d db.Dialect) catalogQueries {
	if d == db.Postgres {
		return postgresCatalogQueries
	}
	return sqliteCatalogQueries
}

type CatalogRepository struct {
	db *sqlx.DB
	q  catalogQueries
}

func NewCatalogRepository(conn *sqlx.DB, dialect db.Dialect) *CatalogRepository {
	return &CatalogRepository{db: conn, q: queriesFor(dialect)}
}

var _ Catalog = (*CatalogRepository)(nil)

// itemRow mirrors a catalog_items row; tags arrive as a JSON array in both dialects.
type itemRow struct {
	ID           int64          `db:"id"`
	Title        string         `db:"title"`
	Tags         sql.NullString `db:"tags"`
	ImageURL1    string         `db:"image_url_1"`
	ImageURL2    string         `db:"image_url_2"`
	ImageURL3    string         `db:"image_url_3"`
	ExternalLink string         `db:"external_link"`
	Position     int64          `db:"position"`
}

func (r itemRow) toModel() (models.CatalogItem, error) {
	tags, err := decodeTags(r.Tags)
	if err != nil {
		return models.CatalogItem{}, fmt.Errorf("decode tags of item %d: %w", r.ID, err)
	}
	return models.CatalogItem{
		ID:           r.ID,
		Title:        r.Title,
		Tags:         tags,
		ImageURL1:    r.ImageURL1,
		ImageURL2:    r.ImageURL2,
		ImageURL3:    r.ImageURL3,
		ExternalLink: r.ExternalLink,
		Position:     r.Position,
	}, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeTags(raw sql.NullString) ([]string, error) {
	tags := []string{}
	if !raw.Valid || raw.String == "" || raw.String == "null" {
		return tags, nil
	}
	if err := json.Unmarshal([]byte(raw.String), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// Add inserts the item at position MAX(position)+1 and returns its ID. The
// position is computed inside the insert statement, within a transaction that
// holds the writer lock, so concurrent adds cannot share a position.
func (r *CatalogRepository) Add(ctx context.Context, item models.NewCatalogItem) (int64, error) {
	tags, err := encodeTags(item.Tags)
	if err != nil {
		return 0, fmt.Errorf("encode tags: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin add item transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if r.q.lockItems != "" {
		if _, err := tx.ExecContext(ctx, r.q.lockItems); err != nil {
			return 0, fmt.Errorf("lock catalog items: %w", err)
		}
	}

	var id int64
	err = tx.QueryRowxContext(ctx, tx.Rebind(r.q.insertItem),
		item.Title,
		tags,
		item.ImageURLs[0],
		item.ImageURLs[1],
		item.ImageURLs[2],
		item.ExternalLink,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert catalog item %q: %w", item.Title, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit add item transaction: %w", err)
	}
	return id, nil
}

// Page returns one page of items ordered by position DESC, id DESC, the total
// matching f.Tag and the sorted distinct tags of the whole catalog. All three
// reads share one transaction.
func (r *CatalogRepository) Page(ctx context.Context, f ItemFilter) (ItemPage, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return ItemPage{}, fmt.Errorf("begin catalog read transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var (
		page     ItemPage
		countSQL = r.q.countAll
		listSQL  = r.q.listAll
		countArg []any
	)
	if f.Tag != "" {
		countSQL = r.q.countByTag
		listSQL = r.q.listByTag
		countArg = []any{f.Tag}
	}

	if err := tx.GetContext(ctx, &page.Total, tx.Rebind(countSQL), countArg...); err != nil {
		return ItemPage{}, fmt.Errorf("count catalog items: %w", err)
	}

	var rows []itemRow
	listArgs := append(countArg, f.Limit, f.Offset)
	if err := tx.SelectContext(ctx, &rows, tx.Rebind(listSQL), listArgs...); err != nil {
		return ItemPage{}, fmt.Errorf("list catalog items: %w", err)
	}
	page.Items = make([]models.CatalogItem, 0, len(rows))
	for _, row := range rows {
		item, err := row.toModel()
		if err != nil {
			return ItemPage{}, err
		}
		page.Items = append(page.Items, item)
	}

	page.AllTags = []string{}
	if err := tx.SelectContext(ctx, &page.AllTags, tx.Rebind(r.q.distinctTags)); err != nil {
		return ItemPage{}, fmt.Errorf("list distinct tags: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return ItemPage{}, fmt.Errorf("commit catalog read transaction: %w", err)
	}
	return page, nil
}
