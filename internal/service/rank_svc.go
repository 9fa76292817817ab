package service

import (
	"math"
	"strings"

	"github.com/khemprogrammer/AwasarHub/internal/model"
)

const (
	interestWeight  = 0.60
	proximityWeight = 0.40

	// Distance (in coordinate degrees) at which proximity decays to zero.
	// Plain Euclidean distance on the (lat, lon) plane, suitable for
	// city-scale deltas.
	proximityRangeDegrees = 10.0

	// Baseline relevance when either tag set is empty.
	interestBaseline = 0.10
	interestFloor    = 0.20
	interestSpan     = 0.80
)

// RankService scores content items against a viewer profile. All methods are
// pure and never fail; absent inputs degrade to floor scores.
type RankService struct{}

func NewRankService() *RankService {
	return &RankService{}
}

// ProximityScore returns a value in [0, 1]: 1.0 at zero distance, decaying
// linearly to 0.0 at proximityRangeDegrees. Returns 0 when either coordinate
// is absent.
func (s *RankService) ProximityScore(viewer, item *model.Location) float64 {
	if viewer == nil || item == nil {
		return 0.0
	}
	dist := math.Sqrt(math.Pow(viewer.Lat-item.Lat, 2) + math.Pow(viewer.Lon-item.Lon, 2))
	return math.Max(0.0, 1.0-math.Min(dist/proximityRangeDegrees, 1.0))
}

// InterestScore returns a value in [0.1, 1.0] measuring tag overlap between
// the viewer's interests and the item's tags, case-insensitively. The overlap
// is normalized by the item's tag count: an item with one matching tag out of
// two scores 0.6, regardless of how many interests the viewer has.
func (s *RankService) InterestScore(interests, tags []string) float64 {
	if len(interests) == 0 || len(tags) == 0 {
		return interestBaseline
	}

	interestSet := lowerSet(interests)
	tagSet := lowerSet(tags)

	overlap := 0
	for tag := range tagSet {
		if interestSet[tag] {
			overlap++
		}
	}

	return interestFloor + interestSpan*(float64(overlap)/math.Max(float64(len(tagSet)), 1))
}

// Rank combines interest and proximity into the final score:
// 0.6*interest + 0.4*proximity. Ties are broken downstream by a stable sort
// over the content enumeration order.
func (s *RankService) Rank(viewerLoc *model.Location, interests []string, item *model.FeedContent) float64 {
	pscore := s.ProximityScore(viewerLoc, item.Location())
	iscore := s.InterestScore(interests, item.Tags)
	return interestWeight*iscore + proximityWeight*pscore
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}
