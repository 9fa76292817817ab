package service

import (
	"testing"

	"github.com/khemprogrammer/AwasarHub/internal/model"
)

// engagementState is a pure-logic mirror of the transactional toggle and
// counting behavior in EngagementRepo, for unit testing without a database.
// Each record is one row of the engagement log.
type engagementState struct {
	records []struct {
		UserID int64
		Ref    model.ContentRef
		Action string
	}
}

func (s *engagementState) apply(userID int64, ref model.ContentRef, action string) string {
	if action == model.ActionLike {
		for i, r := range s.records {
			if r.UserID == userID && r.Ref == ref && r.Action == model.ActionLike {
				s.records = append(s.records[:i], s.records[i+1:]...)
				return model.StatusUnliked
			}
		}
		s.records = append(s.records, struct {
			UserID int64
			Ref    model.ContentRef
			Action string
		}{userID, ref, action})
		return model.StatusLiked
	}

	s.records = append(s.records, struct {
		UserID int64
		Ref    model.ContentRef
		Action string
	}{userID, ref, action})
	return model.StatusLogged
}

func (s *engagementState) counts(ref model.ContentRef) model.EngagementCounts {
	var c model.EngagementCounts
	for _, r := range s.records {
		if r.Ref != ref {
			continue
		}
		switch r.Action {
		case model.ActionLike:
			c.Likes++
		case model.ActionRepost:
			c.Reposts++
		case model.ActionShare:
			c.Shares++
		}
	}
	return c
}

func (s *engagementState) likedBy(userID int64, ref model.ContentRef) bool {
	if userID == 0 {
		return false
	}
	for _, r := range s.records {
		if r.UserID == userID && r.Ref == ref && r.Action == model.ActionLike {
			return true
		}
	}
	return false
}

func TestLikeToggleAlternates(t *testing.T) {
	st := &engagementState{}
	ref := model.ContentRef{Type: model.RefTypeJob, ID: 7}

	want := []string{
		model.StatusLiked,
		model.StatusUnliked,
		model.StatusLiked,
		model.StatusUnliked,
	}
	for i, w := range want {
		got := st.apply(42, ref, model.ActionLike)
		if got != w {
			t.Fatalf("toggle %d: status = %q, want %q", i+1, got, w)
		}
	}

	if c := st.counts(ref); c.Likes != 0 {
		t.Errorf("likes after even toggle count = %d, want 0", c.Likes)
	}
}

func TestLikeToggleNeverExceedsOneActiveRecord(t *testing.T) {
	st := &engagementState{}
	ref := model.ContentRef{Type: model.RefTypeOpportunity, ID: 3}

	for i := 0; i < 5; i++ {
		st.apply(42, ref, model.ActionLike)
		if c := st.counts(ref); c.Likes > 1 {
			t.Fatalf("after %d toggles: likes = %d, want at most 1", i+1, c.Likes)
		}
	}

	if c := st.counts(ref); c.Likes != 1 {
		t.Errorf("likes after odd toggle count = %d, want 1", c.Likes)
	}
}

func TestLikesAreIndependentPerUser(t *testing.T) {
	st := &engagementState{}
	ref := model.ContentRef{Type: model.RefTypeJob, ID: 1}

	st.apply(1, ref, model.ActionLike)
	st.apply(2, ref, model.ActionLike)
	st.apply(3, ref, model.ActionLike)
	st.apply(2, ref, model.ActionLike) // user 2 unlikes

	if c := st.counts(ref); c.Likes != 2 {
		t.Errorf("likes = %d, want 2", c.Likes)
	}
	if !st.likedBy(1, ref) {
		t.Error("user 1 should still be liking")
	}
	if st.likedBy(2, ref) {
		t.Error("user 2 unliked, liked state should be false")
	}
}

func TestRepostAndShareAlwaysAppend(t *testing.T) {
	st := &engagementState{}
	ref := model.ContentRef{Type: model.RefTypeJob, ID: 9}

	for i := 0; i < 2; i++ {
		if got := st.apply(42, ref, model.ActionRepost); got != model.StatusLogged {
			t.Fatalf("repost %d: status = %q, want %q", i+1, got, model.StatusLogged)
		}
	}
	st.apply(42, ref, model.ActionShare)

	c := st.counts(ref)
	if c.Reposts != 2 {
		t.Errorf("reposts = %d, want 2", c.Reposts)
	}
	if c.Shares != 1 {
		t.Errorf("shares = %d, want 1", c.Shares)
	}
}

func TestCountsForUnengagedRefAreZero(t *testing.T) {
	st := &engagementState{}
	st.apply(42, model.ContentRef{Type: model.RefTypeJob, ID: 1}, model.ActionLike)

	c := st.counts(model.ContentRef{Type: model.RefTypeOpportunity, ID: 999})
	if c != (model.EngagementCounts{}) {
		t.Errorf("counts for untouched ref = %+v, want all zero", c)
	}
}

func TestAnonymousViewerNeverShowsLiked(t *testing.T) {
	st := &engagementState{}
	ref := model.ContentRef{Type: model.RefTypeJob, ID: 5}
	st.apply(42, ref, model.ActionLike)

	if st.likedBy(0, ref) {
		t.Error("anonymous viewer must never see liked_by_user = true")
	}
}

func TestRefsDistinguishTypeAndID(t *testing.T) {
	st := &engagementState{}
	st.apply(42, model.ContentRef{Type: model.RefTypeJob, ID: 5}, model.ActionLike)
	st.apply(42, model.ContentRef{Type: model.RefTypeOpportunity, ID: 5}, model.ActionLike)

	jobCounts := st.counts(model.ContentRef{Type: model.RefTypeJob, ID: 5})
	oppCounts := st.counts(model.ContentRef{Type: model.RefTypeOpportunity, ID: 5})

	// Same numeric ID under different type tags is two distinct refs.
	if jobCounts.Likes != 1 || oppCounts.Likes != 1 {
		t.Errorf("likes = %d/%d per type, want 1/1", jobCounts.Likes, oppCounts.Likes)
	}
}

func TestParseRefPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    model.ContentRef
		ok      bool
	}{
		{"valid job ref", "job:42", model.ContentRef{Type: model.RefTypeJob, ID: 42}, true},
		{"valid opportunity ref", "opportunity:7", model.ContentRef{Type: model.RefTypeOpportunity, ID: 7}, true},
		{"missing separator", "job42", model.ContentRef{}, false},
		{"non-numeric id", "job:abc", model.ContentRef{}, false},
		{"empty type", ":42", model.ContentRef{}, false},
		{"zero id", "job:0", model.ContentRef{}, false},
		{"empty payload", "", model.ContentRef{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseRefPayload(tt.payload)
			if ok != tt.ok {
				t.Fatalf("parseRefPayload(%q) ok = %v, want %v", tt.payload, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("parseRefPayload(%q) = %+v, want %+v", tt.payload, got, tt.want)
			}
		})
	}
}
