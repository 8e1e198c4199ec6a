package util

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// StrSliceToUInt64Slice parses redis set members into ids
func StrSliceToUInt64Slice(s []string) ([]uint64, error) {
	out := make([]uint64, 0, len(s))
	for _, v := range s {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// NormalizeHashtag folds width and case, trims '#' and spaces, and maps hiragana
// onto katakana so "ねこ", "ﾈｺ" and "ネコ" (or "CAT" and "cat") compare equal
func NormalizeHashtag(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "#＃")
	s = strings.ToLower(width.Fold.String(s))
	return strings.Map(func(r rune) rune {
		if r >= 'ぁ' && r <= 'ゖ' {
			return r + ('ァ' - 'ぁ')
		}
		return r
	}, strings.TrimSpace(s))
}

// DedupUint64 keeps the first occurrence of every id
func DedupUint64(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
