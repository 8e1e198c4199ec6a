package wire

import (
	"Viewy/internal/api"
	"Viewy/internal/api/config"
	"Viewy/internal/api/handler"
	"Viewy/internal/job"
	"Viewy/internal/model"
	"Viewy/internal/pkg/cron"
	"Viewy/internal/pkg/es"
	"Viewy/internal/pkg/kafka"
	"Viewy/internal/pkg/mongo"
	"Viewy/internal/repository"
	"Viewy/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer top-level components the process runs
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongodrv.Database, cfg *config.Config) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepository(db)
	actionRepo := repository.NewPostActionRepo(db)
	userRepo := repository.NewUserRepo(db)
	userRolesRepo := repository.NewUserRolesRepo(db)
	userFollowRepo := repository.NewUserFollowRepo(db)
	adRepo := repository.NewAdRepo(db)
	viewDurationRepo := mongo.NewViewDurationRepo(mongoDB)
	postESRepo := es.NewPostRepo(es.Client)

	qpWeights := model.QPWeights{
		Rate:  cfg.QP.RateWeight,
		View:  cfg.QP.ViewWeight,
		Emote: cfg.QP.EmoteWeight,
	}

	userService := service.NewUserService(userRepo, userRolesRepo, time.Duration(cfg.Cache.PosterTTLSeconds)*time.Second)
	userFollowService := service.NewUserFollowService(userFollowRepo, userRepo)
	adService := service.NewAdService(adRepo)
	postService := service.NewPostService(postRepo, actionRepo, userFollowService)
	feedService := service.NewFeedService(postRepo, actionRepo, userFollowService, viewDurationRepo, adService, cfg.Feed, cfg.Rank)
	postListService := service.NewPostListService(postRepo, actionRepo, userRepo, userFollowRepo, adService, cfg.Feed.PageSize)
	actionService := service.NewPostActionService(actionRepo, postRepo, viewDurationRepo, qpWeights, service.EveryNViews(cfg.QP.RefreshEvery))
	hashtagService := service.NewHashtagService(postRepo, actionRepo, postESRepo, adService)

	handlers := &api.HandlersGroup{
		FeedHandler:       handler.NewFeedHandler(feedService, userService),
		PostHandler:       handler.NewPostHandler(postService),
		PostListHandler:   handler.NewPostListHandler(postListService, userService),
		PostActionHandler: handler.NewPostActionHandler(actionService),
		AdHandler:         handler.NewAdHandler(adService),
		HashtagHandler:    handler.NewHashtagHandler(hashtagService, userService),
		UserHandler:       handler.NewUserHandler(userService),
		UserFollowHandler: handler.NewUserFollowHandler(userFollowService),
		UserSvc:           userService,
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, postESRepo)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		cfg.Cron,
		job.NewQPRefreshJob(actionService),
		job.NewHotHashtagJob(hashtagService),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
