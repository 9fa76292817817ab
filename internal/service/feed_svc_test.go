package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/khemprogrammer/AwasarHub/internal/model"
)

func rankedCards(n int) []model.FeedCard {
	cards := make([]model.FeedCard, n)
	for i := range cards {
		cards[i] = model.FeedCard{ContentType: model.ContentTypeNews, Title: fmt.Sprintf("item-%d", i)}
	}
	return cards
}

func adCards(n int) []model.FeedCard {
	ads := make([]model.FeedCard, n)
	for i := range ads {
		ads[i] = model.FeedCard{ContentType: model.ContentTypeAd, Title: fmt.Sprintf("ad-%d", i)}
	}
	return ads
}

func adIndexes(cards []model.FeedCard) []int {
	var idx []int
	for i, c := range cards {
		if c.ContentType == model.ContentTypeAd {
			idx = append(idx, i)
		}
	}
	return idx
}

func TestInterleaveAds(t *testing.T) {
	tests := []struct {
		name       string
		cards      int
		ads        int
		wantLen    int
		wantAdsAt  []int
	}{
		{"12 items and 3 ads fills two slots", 12, 3, 14, []int{5, 11}},
		{"15 items and 3 ads fills all three slots", 15, 3, 18, []int{5, 11, 17}},
		{"short feed leaves ads unused", 4, 3, 4, nil},
		{"exactly one slot", 5, 3, 6, []int{5}},
		{"no ads", 12, 0, 12, nil},
		{"no items", 0, 3, 0, nil},
		{"ads run out before slots do", 20, 2, 22, []int{5, 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interleaveAds(rankedCards(tt.cards), adCards(tt.ads))
			if len(got) != tt.wantLen {
				t.Fatalf("interleaveAds(%d items, %d ads) len = %d, want %d", tt.cards, tt.ads, len(got), tt.wantLen)
			}

			gotAds := adIndexes(got)
			if len(gotAds) != len(tt.wantAdsAt) {
				t.Fatalf("ad positions = %v, want %v", gotAds, tt.wantAdsAt)
			}
			for i, pos := range tt.wantAdsAt {
				if gotAds[i] != pos {
					t.Errorf("ad %d at index %d, want %d", i, gotAds[i], pos)
				}
			}
		})
	}
}

func TestInterleaveAdsPreservesOrder(t *testing.T) {
	got := interleaveAds(rankedCards(12), adCards(3))

	// Ranked items must appear in their original order with ads only added,
	// never replacing or reordering content.
	next := 0
	for _, c := range got {
		if c.ContentType == model.ContentTypeAd {
			continue
		}
		want := fmt.Sprintf("item-%d", next)
		if c.Title != want {
			t.Fatalf("content card out of order: got %q, want %q", c.Title, want)
		}
		next++
	}
	if next != 12 {
		t.Errorf("output contains %d content cards, want 12", next)
	}

	// Ads are consumed first to last.
	ads := adIndexes(got)
	for i, pos := range ads {
		want := fmt.Sprintf("ad-%d", i)
		if got[pos].Title != want {
			t.Errorf("ad at index %d = %q, want %q", pos, got[pos].Title, want)
		}
	}
}

func TestSortPostsByCreatedAt(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	posts := []model.PostCard{
		{ID: 1, Type: model.RefTypeJob, CreatedAt: base},
		{ID: 2, Type: model.RefTypeOpportunity, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 3, Type: model.RefTypeJob, CreatedAt: base.Add(time.Hour)},
	}

	sortPostsByCreatedAt(posts)

	wantOrder := []int64{2, 3, 1}
	for i, want := range wantOrder {
		if posts[i].ID != want {
			t.Errorf("posts[%d].ID = %d, want %d", i, posts[i].ID, want)
		}
	}
}

func TestSortPostsByCreatedAtStableOnTies(t *testing.T) {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	posts := []model.PostCard{
		{ID: 10, Type: model.RefTypeJob, CreatedAt: at},
		{ID: 20, Type: model.RefTypeOpportunity, CreatedAt: at},
		{ID: 30, Type: model.RefTypeJob, CreatedAt: at},
	}

	sortPostsByCreatedAt(posts)

	wantOrder := []int64{10, 20, 30}
	for i, want := range wantOrder {
		if posts[i].ID != want {
			t.Errorf("posts[%d].ID = %d, want %d (insertion order must hold on equal timestamps)", i, posts[i].ID, want)
		}
	}
}
