package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
)

type likeKey struct {
	slug string
	user string
}

type mockLikeRepo struct {
	likes map[likeKey]domain.LikeInput
	order []likeKey
}

func newMockLikeRepo() *mockLikeRepo {
	return &mockLikeRepo{likes: map[likeKey]domain.LikeInput{}}
}

func (m *mockLikeRepo) Toggle(ctx context.Context, input domain.LikeInput) (bool, error) {
	if removed, _ := m.Unlike(ctx, input.Slug, input.UserID); removed {
		return false, nil
	}
	return m.Like(ctx, input)
}

func (m *mockLikeRepo) Like(ctx context.Context, input domain.LikeInput) (bool, error) {
	key := likeKey{input.Slug, input.UserID}
	if _, ok := m.likes[key]; ok {
		return false, nil
	}
	m.likes[key] = input
	m.order = append(m.order, key)
	return true, nil
}

func (m *mockLikeRepo) Unlike(ctx context.Context, slug, userID string) (bool, error) {
	key := likeKey{slug, userID}
	if _, ok := m.likes[key]; !ok {
		return false, nil
	}
	delete(m.likes, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (m *mockLikeRepo) HasLiked(ctx context.Context, slug, userID string) (bool, error) {
	_, ok := m.likes[likeKey{slug, userID}]
	return ok, nil
}

func (m *mockLikeRepo) Count(ctx context.Context, slug string) (int64, error) {
	var n int64
	for key := range m.likes {
		if key.slug == slug {
			n++
		}
	}
	return n, nil
}

func (m *mockLikeRepo) Summary(ctx context.Context, slug string, limit int) (domain.LikeSummary, error) {
	count, _ := m.Count(ctx, slug)
	summary := domain.LikeSummary{Count: count, Users: []domain.Liker{}}
	for _, key := range m.order {
		if key.slug != slug || len(summary.Users) == limit {
			continue
		}
		like := m.likes[key]
		summary.Users = append(summary.Users, domain.Liker{UserID: like.UserID, UserName: like.UserName, UserImage: like.UserImage})
	}
	return summary, nil
}

func newLikes(t *testing.T) (*LikesUsecase, *mockLikeRepo, *mockPublisher) {
	repo := newMockLikeRepo()
	publisher := &mockPublisher{}
	return NewLikesUsecase(repo, newValidator(t), NewNotifier(nil, publisher)), repo, publisher
}

func TestToggleParity(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newLikes(t)
	in := domain.LikeInput{Slug: "post", UserID: "u1", UserName: "Ada"}

	for i := 1; i <= 5; i++ {
		result, err := uc.Toggle(ctx, in)
		if err != nil {
			t.Fatalf("toggle %d failed: %v", i, err)
		}
		wantLiked := i%2 == 1
		if result.Liked != wantLiked {
			t.Fatalf("toggle %d: expected liked=%v", i, wantLiked)
		}
		has, err := uc.HasLiked(ctx, "post", "u1")
		if err != nil || has != wantLiked {
			t.Fatalf("toggle %d: hasLiked=%v err=%v", i, has, err)
		}
	}
}

func TestCountMatchesDistinctUsers(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newLikes(t)

	for _, user := range []string{"u1", "u2", "u3", "u2"} {
		if _, err := uc.Like(ctx, domain.LikeInput{Slug: "post", UserID: user, UserName: user}); err != nil {
			t.Fatalf("like failed: %v", err)
		}
	}
	if _, err := uc.Toggle(ctx, domain.LikeInput{Slug: "post", UserID: "u3", UserName: "u3"}); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	count, err := uc.GetCount(ctx, "post")
	if err != nil || count != 2 {
		t.Fatalf("expected 2 likes got %d err=%v", count, err)
	}

	summary, err := uc.GetBySlug(ctx, "post")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.Count != 2 || len(summary.Users) != 2 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestLikeUnlikeAreIdempotent(t *testing.T) {
	ctx := context.Background()
	uc, _, publisher := newLikes(t)
	in := domain.LikeInput{Slug: "post", UserID: "u1", UserName: "Ada"}

	for i := 0; i < 2; i++ {
		result, err := uc.Like(ctx, in)
		if err != nil || !result.Liked {
			t.Fatalf("like %d: %+v err=%v", i, result, err)
		}
	}
	for i := 0; i < 2; i++ {
		result, err := uc.Unlike(ctx, "post", "u1")
		if err != nil || result.Liked {
			t.Fatalf("unlike %d: %+v err=%v", i, result, err)
		}
	}
	if len(publisher.events) != 2 {
		t.Fatalf("expected one event per state change, got %d", len(publisher.events))
	}
	if publisher.events[0].ID != "post" || publisher.events[1].Op != domain.ChangeOpRemove {
		t.Fatalf("unexpected events %+v", publisher.events)
	}
}

func TestLikeValidation(t *testing.T) {
	ctx := context.Background()
	uc, repo, _ := newLikes(t)

	if _, err := uc.Toggle(ctx, domain.LikeInput{Slug: "post", UserID: "u1"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for missing userName got %v", err)
	}
	if _, err := uc.Like(ctx, domain.LikeInput{UserID: "u1", UserName: "Ada"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for missing slug got %v", err)
	}
	if _, err := uc.Unlike(ctx, "post", ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for missing userId got %v", err)
	}
	if len(repo.likes) != 0 {
		t.Fatalf("expected no writes")
	}
}
