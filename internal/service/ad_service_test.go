package service

import (
	"Viewy/internal/model"
	"context"
	"errors"
	"math/rand/v2"
	"testing"
)

func TestAdService(t *testing.T) {
	ads := &memAds{ads: map[model.AdKind][]*model.Advertisement{
		model.AdKindStandard: {
			{ID: 1, Title: "live", ImageKey: "https://cdn.example.com/1.png", IsActive: true},
			{ID: 2, Title: "paused", IsActive: false},
		},
		model.AdKindWide: {{ID: 1, Title: "wide", IsActive: true}},
	}}
	svc := newAdService(ads, rand.New(rand.NewPCG(3, 3)))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ad, err := svc.PickAd(ctx, model.AdKindStandard)
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		if ad == nil || ad.ID != 1 || ad.ImageURL != "https://cdn.example.com/1.png" {
			t.Fatalf("ad = %+v, want the only active standard ad", ad)
		}
	}

	for i := 0; i < 4; i++ {
		if err := svc.IncrementView(ctx, model.AdKindStandard, 1); err != nil {
			t.Fatalf("view: %v", err)
		}
	}
	click, err := svc.IncrementClick(ctx, model.AdKindStandard, 1)
	if err != nil {
		t.Fatalf("click: %v", err)
	}
	if click.ClickRate != 25 {
		t.Fatalf("click rate = %v, want 25", click.ClickRate)
	}
	// wide ads count separately
	if click, _ = svc.IncrementClick(ctx, model.AdKindWide, 1); click.ClickRate != 0 {
		t.Fatalf("wide click rate = %v, want 0 without views", click.ClickRate)
	}

	if err = svc.IncrementView(ctx, model.AdKindStandard, 9); !errors.Is(err, ErrAdNotFound) {
		t.Fatalf("missing ad err = %v, want ErrAdNotFound", err)
	}
	if _, err = svc.IncrementClick(ctx, model.AdKindWide, 9); !errors.Is(err, ErrAdNotFound) {
		t.Fatalf("missing ad err = %v, want ErrAdNotFound", err)
	}
}

func TestPickAdNoneActive(t *testing.T) {
	svc := newAdService(&memAds{}, rand.New(rand.NewPCG(1, 1)))
	ad, err := svc.PickAd(context.Background(), model.AdKindWide)
	if err != nil || ad != nil {
		t.Fatalf("pick = (%+v, %v), want (nil, nil)", ad, err)
	}
}
