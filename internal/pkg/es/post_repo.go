package es

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/versiontype"
	"github.com/goccy/go-json"
)

// MaxSuggestions returned by SuggestHashtags
const MaxSuggestions = 10

type PostRepo interface {
	IndexPost(ctx context.Context, post *PostES, version int64) error
	DeletePost(ctx context.Context, id uint64) error
	SuggestHashtags(ctx context.Context, prefix string) ([]string, error)
}

type PostRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewPostRepo(client *elasticsearch.TypedClient) PostRepo {
	return &PostRepoImpl{client: client}
}

// IndexPost external versioning drops out-of-order CDC events
func (s *PostRepoImpl) IndexPost(ctx context.Context, post *PostES, version int64) error {
	_, err := s.client.Index(PostIndex).
		Id(strconv.FormatUint(post.ID, 10)).
		Document(post).
		Version(strconv.FormatInt(version, 10)).
		VersionType(versiontype.External).
		Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) && e.Status == ConflictCode {
			return nil
		}
		return err
	}
	return nil
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	_, err := s.client.Delete(PostIndex, strconv.FormatUint(id, 10)).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) && e.Status == NotFoundCode {
			return nil
		}
		return err
	}
	return nil
}

// SuggestHashtags distinct raw hashtags whose normalized form starts with the
// normalized prefix, posts with the highest qp first
func (s *PostRepoImpl) SuggestHashtags(ctx context.Context, prefix string) ([]string, error) {
	if prefix == "" {
		return []string{}, nil
	}

	resp, err := s.client.Search().
		Index(PostIndex).
		Query(&types.Query{
			Prefix: map[string]types.PrefixQuery{
				"hashtags_norm": {Value: prefix},
			},
		}).
		Sort(types.SortOptions{SortOptions: map[string]types.FieldSort{
			"qp": {Order: &sortorder.Desc},
		}}).
		Source_(&types.SourceFilter{Includes: []string{"hashtags", "hashtags_norm"}}).
		Size(MaxSuggestions * 5).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]PostES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		if hit.Source_ == nil {
			continue
		}
		var doc PostES
		if err = json.Unmarshal(hit.Source_, &doc); err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	return collectPrefixed(docs, prefix, MaxSuggestions), nil
}

// collectPrefixed first max distinct raw tags whose normalized form starts with prefix, in hit order
func collectPrefixed(docs []PostES, prefix string, max int) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, max)
	for _, doc := range docs {
		for i, tag := range doc.Hashtags {
			if i >= len(doc.HashtagsNorm) || !strings.HasPrefix(doc.HashtagsNorm[i], prefix) {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
			if len(out) == max {
				return out
			}
		}
	}
	return out
}
