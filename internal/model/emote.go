package model

import (
	"errors"
	"fmt"
)

const EmoteSlotCount = 5

var ErrEmoteSlot = errors.New("emote slot out of range")

// EmoteSlot 1-based emote selector
type EmoteSlot int

// ParseEmoteSlot rejects anything outside 1..5
func ParseEmoteSlot(n int) (EmoteSlot, error) {
	if n < 1 || n > EmoteSlotCount {
		return 0, ErrEmoteSlot
	}
	return EmoteSlot(n), nil
}

// Column counter column backing the slot
func (e EmoteSlot) Column() string {
	return fmt.Sprintf("emote%d_count", int(e))
}

// Count reads the slot's counter from a post
func (e EmoteSlot) Count(p *Post) int64 {
	return p.Emotes()[int(e)-1]
}
