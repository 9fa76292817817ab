package service

import (
	"math"
	"testing"

	"github.com/khemprogrammer/AwasarHub/internal/model"
)

const rankEpsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < rankEpsilon
}

func TestProximityScore(t *testing.T) {
	svc := NewRankService()

	tests := []struct {
		name   string
		viewer *model.Location
		item   *model.Location
		want   float64
	}{
		{"both locations missing", nil, nil, 0.0},
		{"viewer location missing", nil, &model.Location{Lat: 27.7, Lon: 85.3}, 0.0},
		{"item location missing", &model.Location{Lat: 27.7, Lon: 85.3}, nil, 0.0},
		{"same location", &model.Location{Lat: 27.7, Lon: 85.3}, &model.Location{Lat: 27.7, Lon: 85.3}, 1.0},
		{"5 degrees apart", &model.Location{Lat: 0, Lon: 0}, &model.Location{Lat: 5, Lon: 0}, 0.5},
		{"exactly at range limit", &model.Location{Lat: 0, Lon: 0}, &model.Location{Lat: 10, Lon: 0}, 0.0},
		{"far beyond range limit", &model.Location{Lat: 0, Lon: 0}, &model.Location{Lat: 80, Lon: 120}, 0.0},
		{"3-4-5 triangle", &model.Location{Lat: 0, Lon: 0}, &model.Location{Lat: 3, Lon: 4}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.ProximityScore(tt.viewer, tt.item)
			if !almostEqual(got, tt.want) {
				t.Errorf("ProximityScore() = %.4f, want %.4f", got, tt.want)
			}
		})
	}
}

func TestProximityScoreMonotonicDecay(t *testing.T) {
	svc := NewRankService()
	viewer := &model.Location{Lat: 0, Lon: 0}

	prev := svc.ProximityScore(viewer, &model.Location{Lat: 0, Lon: 0})
	for d := 1.0; d <= 10.0; d++ {
		got := svc.ProximityScore(viewer, &model.Location{Lat: d, Lon: 0})
		if got >= prev {
			t.Errorf("proximity at %.0f degrees = %.4f, not below %.4f at %.0f degrees", d, got, prev, d-1)
		}
		prev = got
	}
}

func TestInterestScore(t *testing.T) {
	svc := NewRankService()

	tests := []struct {
		name      string
		interests []string
		tags      []string
		want      float64
	}{
		{"no interests", nil, []string{"ai", "jobs"}, 0.1},
		{"no tags", []string{"ai"}, nil, 0.1},
		{"both empty", nil, nil, 0.1},
		{"no overlap", []string{"cooking"}, []string{"ai", "jobs"}, 0.2},
		{"one of two tags match", []string{"ai"}, []string{"ai", "event"}, 0.6},
		{"full overlap", []string{"ai", "event"}, []string{"ai", "event"}, 1.0},
		{"case insensitive", []string{"AI"}, []string{"ai"}, 1.0},
		{"duplicate tags counted once", []string{"ai"}, []string{"ai", "AI"}, 1.0},
		{"extra interests do not dilute", []string{"ai", "jobs", "music", "sports"}, []string{"ai"}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.InterestScore(tt.interests, tt.tags)
			if !almostEqual(got, tt.want) {
				t.Errorf("InterestScore(%v, %v) = %.4f, want %.4f", tt.interests, tt.tags, got, tt.want)
			}
		})
	}
}

func TestRank(t *testing.T) {
	svc := NewRankService()
	lat, lon := 27.7, 85.3

	tests := []struct {
		name      string
		viewerLoc *model.Location
		interests []string
		item      model.FeedContent
		want      float64
	}{
		{
			"full interest, no location on item",
			&model.Location{Lat: lat, Lon: lon},
			[]string{"ai"},
			model.FeedContent{Tags: []string{"ai"}},
			0.6*1.0 + 0.4*0.0,
		},
		{
			"same city, no tags",
			&model.Location{Lat: lat, Lon: lon},
			nil,
			model.FeedContent{Latitude: &lat, Longitude: &lon},
			0.6*0.1 + 0.4*1.0,
		},
		{
			"anonymous profile floors both components",
			nil,
			nil,
			model.FeedContent{Latitude: &lat, Longitude: &lon, Tags: []string{"ai"}},
			0.6*0.1 + 0.4*0.0,
		},
		{
			"perfect match on both axes",
			&model.Location{Lat: lat, Lon: lon},
			[]string{"ai", "event"},
			model.FeedContent{Latitude: &lat, Longitude: &lon, Tags: []string{"ai", "event"}},
			1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Rank(tt.viewerLoc, tt.interests, &tt.item)
			if !almostEqual(got, tt.want) {
				t.Errorf("Rank() = %.4f, want %.4f", got, tt.want)
			}
		})
	}
}

func TestRankBoundedByOne(t *testing.T) {
	svc := NewRankService()
	lat, lon := 1.0, 1.0
	item := model.FeedContent{
		Latitude:  &lat,
		Longitude: &lon,
		Tags:      []string{"a", "b", "c"},
	}

	got := svc.Rank(&model.Location{Lat: 1.0, Lon: 1.0}, []string{"a", "b", "c", "d", "e"}, &item)
	if got > 1.0+rankEpsilon {
		t.Errorf("Rank() = %.4f, want <= 1.0", got)
	}
}
