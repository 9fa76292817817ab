package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/khemprogrammer/AwasarHub/internal/model"
	"github.com/khemprogrammer/AwasarHub/internal/repository"
)

const (
	// An ad slot opens after every adSlotInterval-th ranked card.
	adSlotInterval = 5
	// At most this many ads are interleaved per feed, consumed in order.
	maxFeedAds = 3
)

// FeedService composes the personalized and global feeds.
type FeedService struct {
	content    *repository.ContentRepo
	jobs       *repository.JobRepo
	opps       *repository.OpportunityRepo
	ads        *repository.AdRepo
	engagement *EngagementService
	rank       *RankService
}

func NewFeedService(
	content *repository.ContentRepo,
	jobs *repository.JobRepo,
	opps *repository.OpportunityRepo,
	ads *repository.AdRepo,
	engagement *EngagementService,
	rank *RankService,
) *FeedService {
	return &FeedService{
		content:    content,
		jobs:       jobs,
		opps:       opps,
		ads:        ads,
		engagement: engagement,
		rank:       rank,
	}
}

// Personalized composes the viewer's ranked feed: every content row is scored
// against the viewer's location and interests, stable-sorted descending by
// rank (ties keep the repository's newest-first enumeration order), and
// enabled ads are interleaved after every 5th ranked card.
func (s *FeedService) Personalized(ctx context.Context, viewer *model.User) (*model.FeedResponse, error) {
	items, err := s.content.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: feed content: %v", model.ErrLookupFailure, err)
	}

	viewerLoc := viewer.Location()
	ranked := make([]model.RankedCard, 0, len(items))
	for _, item := range items {
		ranked = append(ranked, model.RankedCard{
			Rank: s.rank.Rank(viewerLoc, viewer.Interests, &item),
			Item: item,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Rank > ranked[j].Rank })

	cards := make([]model.FeedCard, 0, len(ranked))
	for _, rc := range ranked {
		cards = append(cards, rc.Item.Card())
	}

	ads, err := s.ads.ListEnabled(ctx, maxFeedAds)
	if err != nil {
		return nil, fmt.Errorf("%w: advertisements: %v", model.ErrLookupFailure, err)
	}
	adCards := make([]model.FeedCard, 0, len(ads))
	for _, ad := range ads {
		adCards = append(adCards, ad.Card())
	}

	return &model.FeedResponse{Items: interleaveAds(cards, adCards)}, nil
}

// interleaveAds inserts one ad card after every adSlotInterval-th ranked card
// until the ads run out. Slots past the end of the ranked list are never
// filled, so a short feed can leave ads unused.
func interleaveAds(cards, ads []model.FeedCard) []model.FeedCard {
	out := make([]model.FeedCard, 0, len(cards)+len(ads))
	adIndex := 0
	for i, card := range cards {
		out = append(out, card)
		if i%adSlotInterval == adSlotInterval-1 && adIndex < len(ads) {
			out = append(out, ads[adIndex])
			adIndex++
		}
	}
	return out
}

// Global composes the unranked cross-posting feed: all jobs and opportunities
// projected to post cards, annotated with engagement stats, merged and sorted
// purely by creation time descending. No scoring and no ads. A viewerID of 0
// means anonymous.
func (s *FeedService) Global(ctx context.Context, viewerID int64) (*model.PostFeedResponse, error) {
	jobs, err := s.jobs.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: jobs: %v", model.ErrLookupFailure, err)
	}
	opps, err := s.opps.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: opportunities: %v", model.ErrLookupFailure, err)
	}

	posts := make([]model.PostCard, 0, len(jobs)+len(opps))
	for _, j := range jobs {
		posts = append(posts, jobCard(j))
	}
	for _, o := range opps {
		posts = append(posts, opportunityCard(o))
	}

	refs := make([]model.ContentRef, len(posts))
	for i, p := range posts {
		refs[i] = model.ContentRef{Type: p.Type, ID: p.ID}
	}
	stats, err := s.engagement.StatsFor(ctx, refs, viewerID)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].EngagementStats = stats[refs[i]]
	}

	sortPostsByCreatedAt(posts)
	return &model.PostFeedResponse{Items: posts}, nil
}

func sortPostsByCreatedAt(posts []model.PostCard) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

func jobCard(j model.Job) model.PostCard {
	return model.PostCard{
		ID:          j.ID,
		Type:        model.RefTypeJob,
		Title:       j.Title,
		Company:     j.Company,
		Description: j.Description,
		City:        j.City,
		Latitude:    j.Latitude,
		Longitude:   j.Longitude,
		Tags:        j.Tags,
		LinkURL:     j.LinkURL,
		PostedBy:    j.PostedBy,
		CreatedAt:   j.CreatedAt,
	}
}

func opportunityCard(o model.Opportunity) model.PostCard {
	return model.PostCard{
		ID:          o.ID,
		Type:        model.RefTypeOpportunity,
		Title:       o.Title,
		Org:         o.Org,
		Description: o.Description,
		Category:    o.Category,
		City:        o.City,
		Latitude:    o.Latitude,
		Longitude:   o.Longitude,
		Tags:        o.Tags,
		LinkURL:     o.LinkURL,
		PostedBy:    o.PostedBy,
		CreatedAt:   o.CreatedAt,
	}
}
