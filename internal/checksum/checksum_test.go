package checksum

import (
	"testing"

	"github.com/starford/journal/internal/models"
)

func TestSum(t *testing.T) {
	// sha256("")
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Sum(nil); got != want {
		t.Errorf("Sum(nil) = %s", got)
	}
}

func TestItem_SensitiveToEveryField(t *testing.T) {
	base := models.RecentItem{Section: models.SectionReads, URL: "/reads/a", Title: "A", Description: "d", Date: "2024-01-01"}
	variants := []models.RecentItem{base, base, base, base, base}
	variants[0].SubSection = "x"
	variants[1].Title = "B"
	variants[2].Description = "e"
	variants[3].Date = "2024-01-02"
	variants[4].Section = models.SectionWrites

	for i, v := range variants {
		if Item(v) == Item(base) {
			t.Errorf("variant %d has the same checksum as base", i)
		}
	}
	if Item(base) != Item(base) {
		t.Error("Item is not deterministic")
	}
}

func TestFeed_OrderMatters(t *testing.T) {
	a := models.RecentItem{URL: "/reads/a"}
	b := models.RecentItem{URL: "/reads/b"}
	if Feed([]models.RecentItem{a, b}) == Feed([]models.RecentItem{b, a}) {
		t.Error("reordered feed should change checksum")
	}
	if Feed(nil) != Feed([]models.RecentItem{}) {
		t.Error("nil and empty feed should match")
	}
}
