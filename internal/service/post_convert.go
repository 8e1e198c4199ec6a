package service

import (
	"Viewy/internal/api/dto"
	"Viewy/internal/model"
	"Viewy/internal/pkg/consts"
	"Viewy/internal/pkg/minio"
	"time"

	"github.com/jinzhu/copier"
)

func toPostDTO(post *model.Post) *dto.PostDTO {
	item := &dto.PostDTO{}
	_ = copier.Copy(item, post)
	emotes := post.Emotes()
	item.EmoteCounts = emotes[:]
	item.Hashtags = post.Hashtags()
	// the column holds seconds for videos only
	item.ContentLength = model.ContentLength(post.IsVideo, post.ImageCount, post.ContentLength)
	item.VisualURL = minio.GetPublicURL(post.VisualKey)
	item.PostedAt = post.PostedAt.Format(time.RFC3339)

	if post.Poster.ID != 0 {
		item.PosterName = post.Poster.Username
		avatar := post.Poster.AvatarKey
		if avatar == "" {
			avatar = consts.DefaultAvatarURL
		}
		item.PosterAvatarURL = minio.GetPublicURL(avatar)
	}
	return item
}

// toPostDTOs lays posts out in ids order. Repeated ids repeat the post,
// ids without a post are skipped.
func toPostDTOs(ids []uint64, posts []*model.Post) []*dto.PostDTO {
	byID := make(map[uint64]*model.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}
	list := make([]*dto.PostDTO, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			list = append(list, toPostDTO(p))
		}
	}
	return list
}

func toAdDTO(kind model.AdKind, ad *model.Advertisement) *dto.AdDTO {
	if ad == nil {
		return nil
	}
	item := &dto.AdDTO{}
	_ = copier.Copy(item, ad)
	item.Kind = string(kind)
	item.ImageURL = minio.GetPublicURL(ad.ImageKey)
	return item
}
