package service

import (
	"Viewy/internal/api/dto"
	"Viewy/internal/model"
	"context"
	"errors"
	"testing"
	"time"
)

func TestAnnotate(t *testing.T) {
	store := newMemStore()
	store.favorites[favKey{1, 10}] = testNow
	store.favorites[favKey{2, 11}] = testNow
	store.reports[favKey{1, 11}] = &model.Report{ReporterID: 1, PostID: 11}
	store.follows[1] = []uint64{7}
	flags := viewerFlags{actionRepo: store, userFollowSvc: NewUserFollowService(store, store)}

	posts := []*dto.PostDTO{
		{ID: 10, PosterID: 7},
		{ID: 11, PosterID: 8},
		// repeated feed entry
		{ID: 10, PosterID: 7},
	}
	if err := flags.annotate(context.Background(), 1, posts); err != nil {
		t.Fatalf("annotate: %v", err)
	}

	want := []struct{ fav, followed, reported bool }{
		{fav: true, followed: true},
		{reported: true},
		{fav: true, followed: true},
	}
	for i, w := range want {
		p := posts[i]
		if p.FavoritedByUser != w.fav || p.FollowedByUser != w.followed || p.ReportedByUser != w.reported {
			t.Errorf("post[%d] flags = (%v, %v, %v), want (%v, %v, %v)", i,
				p.FavoritedByUser, p.FollowedByUser, p.ReportedByUser, w.fav, w.followed, w.reported)
		}
	}

	anon := []*dto.PostDTO{{ID: 10, PosterID: 7}}
	if err := flags.annotate(context.Background(), 0, anon); err != nil {
		t.Fatalf("anonymous annotate: %v", err)
	}
	if anon[0].FavoritedByUser || anon[0].FollowedByUser || anon[0].ReportedByUser {
		t.Fatalf("anonymous flags set: %+v", anon[0])
	}
}

func TestGetPostById(t *testing.T) {
	store := newMemStore()
	store.addPost(&model.Post{ID: 1, PosterID: 2, ImageCount: 6, PostedAt: testNow})
	store.addPost(&model.Post{ID: 2, PosterID: 2, IsVideo: true, ContentLength: 42, PostedAt: testNow.Add(time.Minute)})
	store.addPost(&model.Post{ID: 3, PosterID: 2, IsHidden: true, PostedAt: testNow})
	store.favorites[favKey{5, 1}] = testNow
	store.follows[5] = []uint64{2}
	svc := NewPostService(store, store, NewUserFollowService(store, store))
	ctx := context.Background()

	post, err := svc.GetPostById(ctx, 5, 1)
	if err != nil {
		t.Fatalf("GetPostById: %v", err)
	}
	if !post.FavoritedByUser || !post.FollowedByUser || post.ReportedByUser {
		t.Errorf("viewer flags = %+v, want favorited and followed", post)
	}
	// six images at five seconds each
	if post.ContentLength != 30 {
		t.Errorf("manga content_length = %d, want 30", post.ContentLength)
	}

	video, err := svc.GetPostById(ctx, 0, 2)
	if err != nil {
		t.Fatalf("GetPostById video: %v", err)
	}
	if video.ContentLength != 42 || video.FavoritedByUser || video.FollowedByUser {
		t.Errorf("anonymous video = %+v, want content_length 42 and no flags", video)
	}

	for _, id := range []uint64{3, 99} {
		if _, err = svc.GetPostById(ctx, 5, id); !errors.Is(err, ErrPostNotFound) {
			t.Errorf("post %d err = %v, want ErrPostNotFound", id, err)
		}
	}
}
