package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	vidHTTP "vidtube/internal/controller/http"
	"vidtube/internal/repo/persistent"
	"vidtube/internal/usecase"
	"vidtube/pkg/config"
	"vidtube/pkg/jwt"
	"vidtube/pkg/logger"
	"vidtube/pkg/media"
	"vidtube/pkg/middleware"
	"vidtube/pkg/queue"
	"vidtube/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func Run(cfg *config.Config, log *logger.Logger) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	mongoClient, db, err := persistent.Connect(ctx, cfg)
	if err != nil {
		log.Error("Failed to connect to MongoDB: %v", err)
		panic(err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost + ":" + cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	// Events are best-effort; the API stays up without a broker.
	var publisher usecase.EventPublisher
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, events disabled: %v", err)
	} else {
		publisher = queueClient
	}

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	videoRepo := persistent.NewVideoRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	tweetRepo := persistent.NewTweetRepository(db)
	likeRepo := persistent.NewLikeRepository(db)
	playlistRepo := persistent.NewPlaylistRepository(db)
	subscriptionRepo := persistent.NewSubscriptionRepository(db)

	// Initialize use cases
	userUseCase := usecase.NewUserUseCase(userRepo, jwtService, log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, commentRepo, likeRepo, playlistRepo, s3Client, media.NewFFProbe(), publisher, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, videoRepo, log)
	tweetUseCase := usecase.NewTweetUseCase(tweetRepo, log)
	likeUseCase := usecase.NewLikeUseCase(likeRepo, videoRepo, commentRepo, tweetRepo, log)
	playlistUseCase := usecase.NewPlaylistUseCase(playlistRepo, videoRepo, log)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, userRepo, publisher, log)

	// Initialize HTTP handlers
	userHandler := vidHTTP.NewUserHandler(userUseCase, log)
	videoHandler := vidHTTP.NewVideoHandler(videoUseCase, log)
	commentHandler := vidHTTP.NewCommentHandler(commentUseCase, log)
	tweetHandler := vidHTTP.NewTweetHandler(tweetUseCase, log)
	likeHandler := vidHTTP.NewLikeHandler(likeUseCase, log)
	playlistHandler := vidHTTP.NewPlaylistHandler(playlistUseCase, log)
	subscriptionHandler := vidHTTP.NewSubscriptionHandler(subscriptionUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Every error body is written here and nowhere else.
	r.Use(vidHTTP.ErrorHandler(log))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Public routes
	{
		api.POST("/users/register", userHandler.Register)
		api.POST("/users/login", userHandler.Login)

		api.GET("/videos/get-videos", videoHandler.GetAllVideos)
		api.GET("/videos/video-details/:videoId", videoHandler.GetVideoByID)
		api.POST("/videos/view/:videoId", videoHandler.IncrementView)

		api.GET("/comments/video/:videoId", commentHandler.GetVideoComments)
		api.GET("/tweets/user/:userId", tweetHandler.GetUserTweets)

		api.GET("/playlists/user/:userId", playlistHandler.GetUserPlaylists)
		api.GET("/playlists/:playlistId", playlistHandler.GetPlaylistByID)

		api.GET("/subscriptions/channel/:channelId", subscriptionHandler.GetChannelSubscribers)
		api.GET("/subscriptions/user/:subscriberId", subscriptionHandler.GetSubscribedChannels)
	}

	// Authenticated routes
	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware(jwtService))
	auth.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	{
		auth.GET("/users/me", userHandler.Me)

		auth.POST("/videos/publishVideo", videoHandler.PublishVideo)
		auth.PATCH("/videos/update-video-details/:videoId", videoHandler.UpdateVideoDetails)
		auth.PATCH("/videos/update-video/:videoId", videoHandler.UpdateVideoFile)
		auth.DELETE("/videos/delete-video/:videoId", videoHandler.DeleteVideo)
		auth.PATCH("/videos/change-published-status/:videoId", videoHandler.TogglePublishStatus)

		auth.POST("/comments/video/:videoId", commentHandler.AddComment)
		auth.PATCH("/comments/:commentId", commentHandler.UpdateComment)
		auth.DELETE("/comments/:commentId", commentHandler.DeleteComment)

		auth.POST("/tweets", tweetHandler.CreateTweet)
		auth.PATCH("/tweets/:tweetId", tweetHandler.UpdateTweet)
		auth.DELETE("/tweets/:tweetId", tweetHandler.DeleteTweet)

		auth.POST("/likes/toggle/video/:videoId", likeHandler.ToggleVideoLike)
		auth.POST("/likes/toggle/comment/:commentId", likeHandler.ToggleCommentLike)
		auth.POST("/likes/toggle/tweet/:tweetId", likeHandler.ToggleTweetLike)
		auth.GET("/likes/videos", likeHandler.GetLikedVideos)

		auth.POST("/playlists", playlistHandler.CreatePlaylist)
		auth.PATCH("/playlists/add/:playlistId/:videoId", playlistHandler.AddVideoToPlaylist)
		auth.PATCH("/playlists/remove/:playlistId/:videoId", playlistHandler.RemoveVideoFromPlaylist)
		auth.PATCH("/playlists/:playlistId", playlistHandler.UpdatePlaylist)
		auth.DELETE("/playlists/:playlistId", playlistHandler.DeletePlaylist)

		auth.POST("/subscriptions/channel/:channelId", subscriptionHandler.ToggleSubscription)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("VidTube API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down VidTube API...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	closers := []closer{
		{"mongodb", func() error { return mongoClient.Disconnect(shutdownCtx) }},
		{"redis", redisClient.Close},
	}
	if queueClient != nil {
		closers = append(closers, closer{"rabbitmq", func() error { queueClient.Close(); return nil }})
	}

	if err := shutdownSequence(shutdownCtx, log, srv.Shutdown, closers); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("VidTube API exited")
}

type closer struct {
	name  string
	close func() error
}

// shutdownSequence drains in-flight requests first; the backends they
// depend on are only closed once the server has stopped serving.
func shutdownSequence(ctx context.Context, log *logger.Logger, stopServer func(context.Context) error, closers []closer) error {
	if err := stopServer(ctx); err != nil {
		return err
	}
	for _, c := range closers {
		if err := c.close(); err != nil {
			log.Warn("Error closing %s: %v", c.name, err)
		}
	}
	return nil
}
