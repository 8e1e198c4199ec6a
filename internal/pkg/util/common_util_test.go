package util

import (
	"reflect"
	"testing"
)

func TestNormalizeHashtag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ねこ", "ネコ"},
		{"ﾈｺ", "ネコ"},
		{"ネコ", "ネコ"},
		{"#cat ", "cat"},
		{"ＡＢＣ", "abc"},
		{"#Cat", "cat"},
		{"ﾈｺCafe", "ネコcafe"},
		{"＃ぱん", "パン"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeHashtag(tt.in); got != tt.want {
			t.Errorf("NormalizeHashtag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStrSliceToUInt64Slice(t *testing.T) {
	got, err := StrSliceToUInt64Slice([]string{"3", "10"})
	if err != nil || !reflect.DeepEqual(got, []uint64{3, 10}) {
		t.Errorf("got %v, %v; want [3 10]", got, err)
	}
	if _, err = StrSliceToUInt64Slice([]string{"x"}); err == nil {
		t.Error("non-numeric member accepted")
	}
}

func TestDedupUint64(t *testing.T) {
	got := DedupUint64([]uint64{3, 1, 3, 2, 1})
	if !reflect.DeepEqual(got, []uint64{3, 1, 2}) {
		t.Errorf("DedupUint64 = %v, want [3 1 2]", got)
	}
}

func TestValidateDTO(t *testing.T) {
	type req struct {
		Slot int `validate:"min=1,max=5"`
	}
	if err := ValidateDTO(&req{Slot: 3}); err != nil {
		t.Errorf("valid dto rejected: %v", err)
	}
	if err := ValidateDTO(&req{Slot: 9}); err == nil {
		t.Error("invalid dto accepted")
	}
}
