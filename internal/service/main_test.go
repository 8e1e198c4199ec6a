package service

import (
	"Viewy/internal/pkg/redis"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
)

var mr *miniredis.Miniredis

func TestMain(m *testing.M) {
	var err error
	mr, err = miniredis.Run()
	if err != nil {
		panic(err)
	}
	redis.Rdb = redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})

	code := m.Run()

	_ = redis.Rdb.Close()
	mr.Close()
	os.Exit(code)
}
