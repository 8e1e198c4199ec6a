package mongo

import "time"

const ViewDurationCollection = "view_durations"

// ViewDuration one watch of a post; a user may have many per post
type ViewDuration struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    uint64    `bson:"user_id" json:"user_id"`
	PostID    uint64    `bson:"post_id" json:"post_id"`
	Duration  float64   `bson:"duration" json:"duration"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
