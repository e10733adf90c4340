package usecase

import (
	"context"
	"testing"
	"time"

	domainErrors "github.com/perkstack/loyalty/internal/domain/errors"
	"github.com/perkstack/loyalty/internal/domain/model"
	testhelpers "github.com/perkstack/loyalty/internal/test"
)

func validCatalogReward() *model.Reward {
	return &model.Reward{
		Title:      "Free Coffee",
		PointsCost: 300,
		Category:   model.CategoryProduct,
		Active:     true,
	}
}

func TestRewardCreate(t *testing.T) {
	repo := &testhelpers.RewardRepositoryStub{}
	uc := NewRewardUseCase(repo)

	reward := validCatalogReward()
	reward.CurrentRedemptions = 99

	created, err := uc.Create(context.Background(), reward)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected identifier assigned")
	}
	if created.CurrentRedemptions != 0 {
		t.Fatalf("expected counter reset on create, got %d", created.CurrentRedemptions)
	}
}

func TestRewardCreateValidation(t *testing.T) {
	uc := NewRewardUseCase(&testhelpers.RewardRepositoryStub{})
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*model.Reward)
	}{
		{"empty title", func(r *model.Reward) { r.Title = "" }},
		{"zero cost", func(r *model.Reward) { r.PointsCost = 0 }},
		{"negative cost", func(r *model.Reward) { r.PointsCost = -10 }},
		{"unknown category", func(r *model.Reward) { r.Category = "mystery" }},
		{"unknown tier", func(r *model.Reward) { tier := model.Tier("diamond"); r.RequiredTier = &tier }},
		{"zero cap", func(r *model.Reward) { limit := int64(0); r.MaxRedemptions = &limit }},
		{"inverted window", func(r *model.Reward) {
			from := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
			until := from.AddDate(0, 0, -1)
			r.ValidFrom = &from
			r.ValidUntil = &until
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reward := validCatalogReward()
			tc.mutate(reward)
			if _, err := uc.Create(ctx, reward); err != domainErrors.ErrInvalidReward {
				t.Fatalf("expected ErrInvalidReward, got %v", err)
			}
		})
	}

	if _, err := uc.Create(ctx, nil); err != domainErrors.ErrInvalidReward {
		t.Fatalf("expected ErrInvalidReward for nil, got %v", err)
	}
}

func TestRewardUpdateRequiresID(t *testing.T) {
	uc := NewRewardUseCase(&testhelpers.RewardRepositoryStub{})

	reward := validCatalogReward()
	if _, err := uc.Update(context.Background(), reward); err != domainErrors.ErrInvalidReward {
		t.Fatalf("expected ErrInvalidReward for missing id, got %v", err)
	}
}

func TestRewardUpdate(t *testing.T) {
	repo := &testhelpers.RewardRepositoryStub{
		Rewards: []model.Reward{{ID: 1, Title: "Old", PointsCost: 100, Category: model.CategoryDiscount, Active: true}},
	}
	uc := NewRewardUseCase(repo)

	reward := validCatalogReward()
	reward.ID = 1

	updated, err := uc.Update(context.Background(), reward)
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Title != "Free Coffee" {
		t.Fatalf("unexpected title: %q", updated.Title)
	}
}

func TestRewardListValidatesCategory(t *testing.T) {
	uc := NewRewardUseCase(&testhelpers.RewardRepositoryStub{})

	bad := model.RewardCategory("mystery")
	if _, _, err := uc.List(context.Background(), model.RewardFilter{Category: &bad}); err != domainErrors.ErrInvalidReward {
		t.Fatalf("expected ErrInvalidReward, got %v", err)
	}
}

func TestRewardCheckAvailability(t *testing.T) {
	capacity := int64(5)
	repo := &testhelpers.RewardRepositoryStub{
		Rewards: []model.Reward{
			{ID: 1, Title: "Open", PointsCost: 100, Category: model.CategoryProduct, Active: true},
			{ID: 2, Title: "Inactive", PointsCost: 100, Category: model.CategoryProduct, Active: false},
			{ID: 3, Title: "Capped", PointsCost: 100, Category: model.CategoryProduct, Active: true, MaxRedemptions: &capacity, CurrentRedemptions: 5},
		},
	}
	uc := NewRewardUseCase(repo)
	ctx := context.Background()

	if _, err := uc.CheckAvailability(ctx, 1); err != nil {
		t.Fatalf("expected reward available, got %v", err)
	}
	if _, err := uc.CheckAvailability(ctx, 2); err != domainErrors.ErrRewardUnavailable {
		t.Fatalf("expected ErrRewardUnavailable for inactive, got %v", err)
	}
	if _, err := uc.CheckAvailability(ctx, 3); err != domainErrors.ErrRewardUnavailable {
		t.Fatalf("expected ErrRewardUnavailable for capped, got %v", err)
	}
	if _, err := uc.CheckAvailability(ctx, 4); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRewardDelete(t *testing.T) {
	repo := &testhelpers.RewardRepositoryStub{
		Rewards: []model.Reward{{ID: 1, Title: "Gone", PointsCost: 100, Category: model.CategoryProduct}},
	}
	uc := NewRewardUseCase(repo)

	if err := uc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if err := uc.Delete(context.Background(), 1); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound on repeat delete, got %v", err)
	}
}
