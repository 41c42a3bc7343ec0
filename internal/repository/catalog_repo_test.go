package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"catalog_service/internal/models"
	"catalog_service/internal/repository/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockCatalogRepo(t *testing.T, driverName string, dialect db.Dialect) (*CatalogRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		_ = mockDB.Close()
	})
	return NewCatalogRepository(sqlx.NewDb(mockDB, driverName), dialect), mock
}

func sampleNewItem() models.NewCatalogItem {
	return models.NewCatalogItem{
		Title:        "Lamp",
		Tags:         []string{"light", "home"},
		ImageURLs:    [3]string{"a.png", "b.png", "c.png"},
		ExternalLink: "https://example.com/lamp",
	}
}

func TestCatalogRepository_Add_SQLite(t *testing.T) {
	repo, mock := newMockCatalogRepo(t, "sqlmock", db.SQLite)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(sqliteCatalogQueries.insertItem)).
		WithArgs("Lamp", `["light","home"]`, "a.png", "b.png", "c.png", "https://example.com/lamp").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectCommit()

	id, err := repo.Add(context.Background(), sampleNewItem())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if id != 9 {
		t.Fatalf("id = %d, want 9", id)
	}
}

func TestCatalogRepository_Add_PostgresLocksTable(t *testing.T) {
	repo, mock := newMockCatalogRepo(t, "pgx", db.Postgres)

	item := sampleNewItem()
	item.Tags = nil

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(postgresCatalogQueries.lockItems)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(sqlx.Rebind(sqlx.DOLLAR, postgresCatalogQueries.insertItem))).
		WithArgs("Lamp", `[]`, "a.png", "b.png", "c.png", "https://example.com/lamp").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	id, err := repo.Add(context.Background(), item)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if id != 1 {
		t.Fatalf("id = %d, want 1", id)
	}
}

func TestCatalogRepository_Add_InsertErrorRollsBack(t *testing.T) {
	repo, mock := newMockCatalogRepo(t, "sqlmock", db.SQLite)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(sqliteCatalogQueries.insertItem)).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	if _, err := repo.Add(context.Background(), sampleNewItem()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestCatalogRepository_Page_WithTag(t *testing.T) {
	repo, mock := newMockCatalogRepo(t, "sqlmock", db.SQLite)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(sqliteCatalogQueries.countByTag)).
		WithArgs("x").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(sqliteCatalogQueries.listByTag)).
		WithArgs("x", 12, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "tags", "image_url_1", "image_url_2", "image_url_3", "external_link", "position",
		}).AddRow(4, "Chair", `["x","y"]`, "1", "2", "3", "https://example.com/chair", 4))
	mock.ExpectQuery(regexp.QuoteMeta(sqliteCatalogQueries.distinctTags)).
		WillReturnRows(sqlmock.NewRows([]string{"tag"}).AddRow("x").AddRow("y").AddRow("z"))
	mock.ExpectCommit()

	page, err := repo.Page(context.Background(), ItemFilter{Tag: "x", Limit: 12, Offset: 0})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if page.Total != 1 || len(page.Items) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
	got := page.Items[0]
	if got.ID != 4 || got.Title != "Chair" || len(got.Tags) != 2 || got.Tags[0] != "x" {
		t.Fatalf("unexpected item: %+v", got)
	}
	if imgs := got.Images(); imgs[0] != "1" || imgs[2] != "3" {
		t.Fatalf("unexpected images: %v", imgs)
	}
	if len(page.AllTags) != 3 || page.AllTags[2] != "z" {
		t.Fatalf("unexpected tags: %v", page.AllTags)
	}
}

func TestCatalogRepository_Page_PostgresPlaceholders(t *testing.T) {
	repo, mock := newMockCatalogRepo(t, "pgx", db.Postgres)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(postgresCatalogQueries.countAll)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta(sqlx.Rebind(sqlx.DOLLAR, postgresCatalogQueries.listAll))).
		WithArgs(5, 10).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "tags", "image_url_1", "image_url_2", "image_url_3", "external_link", "position",
		}))
	mock.ExpectQuery(regexp.QuoteMeta(postgresCatalogQueries.distinctTags)).
		WillReturnRows(sqlmock.NewRows([]string{"tag"}))
	mock.ExpectCommit()

	page, err := repo.Page(context.Background(), ItemFilter{Limit: 5, Offset: 10})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if page.Items == nil || len(page.Items) != 0 {
		t.Fatalf("expected empty non-nil items, got %#v", page.Items)
	}
	if page.AllTags == nil || len(page.AllTags) != 0 {
		t.Fatalf("expected empty non-nil tags, got %#v", page.AllTags)
	}
}

func TestCatalogRepository_Page_CountErrorRollsBack(t *testing.T) {
	repo, mock := newMockCatalogRepo(t, "sqlmock", db.SQLite)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(sqliteCatalogQueries.countAll)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	if _, err := repo.Page(context.Background(), ItemFilter{Limit: 12}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
