package index

import (
	"errors"
	"os"
	"reflect"
	"testing"

	"github.com/starford/journal/internal/apperr"
	"github.com/starford/journal/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "journal-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleItems() []models.RecentItem {
	return []models.RecentItem{
		{Section: models.SectionReads, URL: "/reads/b", Title: "Book", Description: "About a uniqueword book", Date: "2024-06-01"},
		{Section: models.SectionWrites, SubSection: "proj", URL: "/writes/proj/e", Title: "Entry", Description: "Entry text", Date: "2024-01-01"},
		{Section: models.SectionThoughts, URL: "/thoughts/t", Title: "Thought", Description: ""},
	}
}

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM items`).Scan(&count); err != nil {
		t.Fatalf("items table missing: %v", err)
	}
	if err := db.conn.QueryRow(`SELECT count(*) FROM meta`).Scan(&count); err != nil {
		t.Fatalf("meta table missing: %v", err)
	}
}

func TestPublishAndList(t *testing.T) {
	db := testDB(t)
	items := sampleItems()

	ch, err := db.Publish(items)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(ch.Added) != 3 || len(ch.Updated) != 0 || len(ch.Removed) != 0 {
		t.Errorf("changes = %+v", ch)
	}

	got, total, err := db.ListItems("", 0, 0)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if total != 3 || !reflect.DeepEqual(got, items) {
		t.Errorf("ListItems = %+v (total %d)", got, total)
	}

	got, total, _ = db.ListItems("writes", 10, 0)
	if total != 1 || len(got) != 1 || got[0].SubSection != "proj" {
		t.Errorf("section filter = %+v (total %d)", got, total)
	}

	got, total, _ = db.ListItems("", 1, 1)
	if total != 3 || len(got) != 1 || got[0].URL != "/writes/proj/e" {
		t.Errorf("page = %+v (total %d)", got, total)
	}
}

func TestPublish_Changes(t *testing.T) {
	db := testDB(t)
	items := sampleItems()
	if _, err := db.Publish(items); err != nil {
		t.Fatal(err)
	}

	ch, err := db.Publish(items)
	if err != nil {
		t.Fatal(err)
	}
	if !ch.Empty() {
		t.Errorf("republishing the same feed should be empty, got %+v", ch)
	}

	next := []models.RecentItem{
		{Section: models.SectionReads, URL: "/reads/new", Title: "New"},
		items[0],
		items[1],
	}
	next[2].Title = "Entry (edited)"

	ch, err = db.Publish(next)
	if err != nil {
		t.Fatal(err)
	}
	want := Changes{
		Added:   []string{"/reads/new"},
		Updated: []string{"/writes/proj/e"},
		Removed: []string{"/thoughts/t"},
	}
	if !reflect.DeepEqual(ch, want) {
		t.Errorf("changes = %+v, want %+v", ch, want)
	}
}

func TestPublish_DuplicateURLs(t *testing.T) {
	db := testDB(t)
	dup := []models.RecentItem{
		{Section: models.SectionReads, URL: "/reads/a", Title: "First"},
		{Section: models.SectionReads, URL: "/reads/a", Title: "Second"},
	}
	if _, err := db.Publish(dup); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	_, total, _ := db.ListItems("", 0, 0)
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	it, err := db.GetItem("/reads/a")
	if err != nil || it.Title != "First" {
		t.Errorf("GetItem = %+v, %v", it, err)
	}
}

func TestGetItem_NotFound(t *testing.T) {
	db := testDB(t)
	_, err := db.GetItem("/reads/missing")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestFeedChecksum(t *testing.T) {
	db := testDB(t)
	cs, err := db.FeedChecksum()
	if err != nil || cs != "" {
		t.Fatalf("initial checksum = %q, %v", cs, err)
	}
	_, _ = db.Publish(sampleItems())
	first, _ := db.FeedChecksum()
	if first == "" {
		t.Fatal("checksum not stored")
	}
	_, _ = db.Publish(sampleItems()[:1])
	second, _ := db.FeedChecksum()
	if first == second {
		t.Error("checksum should change with the feed")
	}
}

func TestSearch_Basic(t *testing.T) {
	db := testDB(t)
	_, _ = db.Publish(sampleItems())

	results, err := db.Search("uniqueword", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].URL != "/reads/b" || results[0].Section != models.SectionReads {
		t.Errorf("search results = %+v, want 1 hit for /reads/b", results)
	}
}
