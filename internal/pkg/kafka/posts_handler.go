package kafka

import (
	"Viewy/internal/pkg/es"
	"Viewy/internal/pkg/util"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// PostsHandler mirrors visible posts into the search index
type PostsHandler struct {
	postESRepo es.PostRepo
}

func NewPostsHandler(postESRepo es.PostRepo) *PostsHandler {
	return &PostsHandler{postESRepo: postESRepo}
}

func (s *PostsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("post consumer setup")
	return nil
}

func (s *PostsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("post consumer cleanup")
	return nil
}

func (s *PostsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-post consume claim", "partition", claim.Partition())
	if err := pullMessageBatch(session, claim, s.logic); err != nil {
		log.Error("topic-post process batch error", "err", err)
		return err
	}
	return nil
}

func (s *PostsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "posts")
	if err != nil {
		return err
	}

	for _, row := range canalMsg.Data {
		if !hashtagsChanged(canalMsg) {
			continue
		}
		post := toESModel(canalMsg.Type, row)
		if post == nil {
			if err = s.postESRepo.DeletePost(ctx, StrToUint64(row["id"])); err != nil {
				return err
			}
			continue
		}
		if err = s.postESRepo.IndexPost(ctx, post, canalMsg.TS); err != nil {
			return err
		}
	}
	return nil
}

// toESModel nil when the row should leave the index
func toESModel(eventType string, row map[string]interface{}) *es.PostES {
	if eventType == DELETE || StrToBool(row["is_hidden"]) {
		return nil
	}

	hashtags := make([]string, 0, 3)
	norms := make([]string, 0, 3)
	for _, col := range []string{"hashtag1", "hashtag2", "hashtag3"} {
		if tag := StrToString(row[col]); tag != "" {
			hashtags = append(hashtags, tag)
			norms = append(norms, util.NormalizeHashtag(tag))
		}
	}

	return &es.PostES{
		ID:           StrToUint64(row["id"]),
		PosterID:     StrToUint64(row["poster_id"]),
		Title:        StrToString(row["title"]),
		Hashtags:     hashtags,
		HashtagsNorm: norms,
		IsReal:       StrToBool(row["is_real"]),
		QP:           StrToFloat64(row["qp"]),
		PostedAt:     StrToDateTime(row["posted_at"]),
	}
}

// hashtagsChanged skips counter-only updates, which are the bulk of the posts binlog.
// qp is indexed for suggestion order, so a qp change also reindexes.
func hashtagsChanged(msg *CanalMessage) bool {
	if msg.Type != UPDATE || len(msg.Old) == 0 {
		return true
	}
	old := msg.Old[0]
	for _, col := range []string{"hashtag1", "hashtag2", "hashtag3", "is_hidden", "is_real", "title", "qp"} {
		if _, ok := old[col]; ok {
			return true
		}
	}
	return false
}
