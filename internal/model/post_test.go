package model

import (
	"math"
	"testing"
)

func TestFavoriteRate(t *testing.T) {
	tests := []struct {
		name      string
		favorites int64
		views     int64
		want      float64
	}{
		{"no views", 3, 0, 0},
		{"half", 5, 10, 50},
		{"none favorited", 0, 40, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FavoriteRate(tt.favorites, tt.views); got != tt.want {
				t.Errorf("FavoriteRate(%d, %d) = %v, want %v", tt.favorites, tt.views, got, tt.want)
			}
		})
	}
}

func TestQualityPointRecomputable(t *testing.T) {
	w := QPWeights{Rate: 1, View: 10, Emote: 5}
	p := &Post{FavoriteCount: 10, ViewsCount: 99, Emote1Count: 4, Emote5Count: 5}

	first := QualityPoint(p, w)
	second := QualityPoint(p, w)
	if first != second {
		t.Fatalf("QualityPoint not stable: %v vs %v", first, second)
	}

	want := FavoriteRate(10, 99) + 2*10 + 1*5
	if math.Abs(first-want) > 1e-9 {
		t.Errorf("QualityPoint = %v, want %v", first, want)
	}

	if got := QualityPoint(&Post{}, w); got != 0 {
		t.Errorf("QualityPoint(zero post) = %v, want 0", got)
	}
}

func TestEmoteSlot(t *testing.T) {
	for _, n := range []int{0, -1, 6} {
		if _, err := ParseEmoteSlot(n); err != ErrEmoteSlot {
			t.Errorf("ParseEmoteSlot(%d) err = %v, want ErrEmoteSlot", n, err)
		}
	}

	p := &Post{Emote1Count: 1, Emote2Count: 2, Emote3Count: 3, Emote4Count: 4, Emote5Count: 5}
	for n := 1; n <= EmoteSlotCount; n++ {
		slot, err := ParseEmoteSlot(n)
		if err != nil {
			t.Fatalf("ParseEmoteSlot(%d) err = %v", n, err)
		}
		if got := slot.Count(p); got != int64(n) {
			t.Errorf("slot %d Count = %d, want %d", n, got, n)
		}
	}
	if got := EmoteSlot(3).Column(); got != "emote3_count" {
		t.Errorf("Column = %q, want emote3_count", got)
	}
	if got := p.EmoteTotal(); got != 15 {
		t.Errorf("EmoteTotal = %d, want 15", got)
	}
}

func TestContentLength(t *testing.T) {
	tests := []struct {
		name    string
		isVideo bool
		images  int
		seconds int
		want    int
	}{
		{"few images", false, 3, 0, 20},
		{"four images", false, 4, 0, 20},
		{"many images", false, 10, 0, 50},
		{"video", true, 0, 42, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentLength(tt.isVideo, tt.images, tt.seconds); got != tt.want {
				t.Errorf("ContentLength = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHashtags(t *testing.T) {
	p := &Post{Hashtag1: "cat", Hashtag3: "dog"}
	got := p.Hashtags()
	if len(got) != 2 || got[0] != "cat" || got[1] != "dog" {
		t.Errorf("Hashtags = %v, want [cat dog]", got)
	}
}

func TestClickRate(t *testing.T) {
	if got := ClickRate(1, 0); got != 0 {
		t.Errorf("ClickRate(1, 0) = %v, want 0", got)
	}
	if got := ClickRate(1, 4); got != 25 {
		t.Errorf("ClickRate(1, 4) = %v, want 25", got)
	}
}

func TestDimension(t *testing.T) {
	tests := []struct {
		dim      Dimension
		real     bool
		nonReal  bool
		filtered bool
	}{
		{DimensionAll, true, true, false},
		{DimensionNonReal, false, true, true},
		{DimensionReal, true, false, true},
		{Dimension(0), true, true, false},
		{Dimension(2.5), true, true, false},
	}
	for _, tt := range tests {
		f := tt.dim.RealFilter()
		if got := f != nil; got != tt.filtered {
			t.Errorf("%v.RealFilter() set = %v, want %v", tt.dim, got, tt.filtered)
		}
		if got := f == nil || *f; got != tt.real {
			t.Errorf("%v admits real posts = %v, want %v", tt.dim, got, tt.real)
		}
		if got := f == nil || !*f; got != tt.nonReal {
			t.Errorf("%v admits non-real posts = %v, want %v", tt.dim, got, tt.nonReal)
		}
	}
}
