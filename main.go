package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/AKACHI-4/WeTube/config"
	"github.com/AKACHI-4/WeTube/controllers"
	"github.com/AKACHI-4/WeTube/db"
	"github.com/AKACHI-4/WeTube/forms"
	"github.com/AKACHI-4/WeTube/kv"
	"github.com/AKACHI-4/WeTube/service"
	"github.com/AKACHI-4/WeTube/storage"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/requestid"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// CORS (Cross-Origin Resource Sharing)
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Origin, Authorization, Accept, Accept-Encoding")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
		} else {
			c.Next()
		}
	}
}

func SlogMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rlog := logger.With(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
			"request_id", requestid.Get(c),
		)

		start := time.Now()
		rlog.Debug("request started")
		c.Next()
		duration := time.Since(start)
		rlog.Info("request completed", "status", c.Writer.Status(), "duration", duration)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	var logger *slog.Logger
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	slog.SetDefault(logger)

	ctx := context.Background()

	database, err := db.NewMongoDB(ctx, cfg.Mongo.URI, cfg.Mongo.DB)
	if err != nil {
		slog.Error("failed to connect to document store", "error", err)
		os.Exit(1)
	}

	redisKV, err := kv.NewRedisKV(cfg.Redis.Addr, cfg.Redis.Pass, cfg.Redis.DB)
	if err != nil {
		slog.Error("failed to connect to key-value store", "error", err)
		os.Exit(1)
	}

	media, err := storage.NewMinioStore(ctx, storage.MinioConfig{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		slog.Error("failed to connect to media storage", "error", err)
		os.Exit(1)
	}

	authService := service.NewAuthService(service.TokenConfig{
		AccessSecret:  cfg.Token.AccessSecret,
		RefreshSecret: cfg.Token.RefreshSecret,
		AccessTTL:     cfg.Token.AccessTTL,
		RefreshTTL:    cfg.Token.RefreshTTL,
	}, database)

	//Start the default gin server
	r := gin.Default()

	//Custom form validator
	binding.Validator = new(forms.DefaultValidator)

	r.Use(CORSMiddleware(cfg.CORSOrigin))
	r.Use(requestid.New(requestid.WithCustomHeaderStrKey("X-Request-Id")))
	r.Use(SlogMiddleware(logger))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	auth := controllers.NewAuthController(authService)
	user := controllers.NewUserController(service.NewUserService(database, media, authService), authService)
	video := controllers.NewVideoController(service.NewVideoService(database, redisKV, media))
	comment := controllers.NewCommentController(service.NewCommentService(database))
	like := controllers.NewLikeController(service.NewLikeService(database))
	subscription := controllers.NewSubscriptionController(service.NewSubscriptionService(database))
	playlist := controllers.NewPlaylistController(service.NewPlaylistService(database))
	tweet := controllers.NewTweetController(service.NewTweetService(database))
	dashboard := controllers.NewDashboardController(service.NewDashboardService(database))
	health := controllers.NewHealthController(database, redisKV)

	v1 := r.Group("/api/v1")

	v1.GET("/healthcheck", health.Health)

	users := v1.Group("/users")
	{
		users.POST("/register", user.Register)
		users.POST("/login", user.Login)
		users.POST("/refresh-token", auth.RefreshToken)

		users.POST("/logout", auth.Authenticated, auth.Logout)
		users.POST("/change-password", auth.Authenticated, user.ChangePassword)
		users.GET("/current-user", auth.Authenticated, user.Current)
		users.PATCH("/update-account", auth.Authenticated, user.UpdateAccount)
		users.PATCH("/avatar", auth.Authenticated, user.UpdateAvatar)
		users.PATCH("/cover-image", auth.Authenticated, user.UpdateCoverImage)
		users.GET("/c/:username", auth.Authenticated, user.ChannelProfile)
		users.GET("/history", auth.Authenticated, user.WatchHistory)
	}

	videos := v1.Group("/videos", auth.Authenticated)
	{
		videos.GET("", video.List)
		videos.POST("", video.Publish)
		videos.GET("/:videoId", video.Get)
		videos.PATCH("/:videoId", video.Update)
		videos.DELETE("/:videoId", video.Delete)
		videos.PATCH("/toggle/publish/:videoId", video.TogglePublish)
	}

	comments := v1.Group("/comments", auth.Authenticated)
	{
		comments.GET("/:videoId", comment.List)
		comments.POST("/:videoId", comment.Add)
		comments.PATCH("/c/:commentId", comment.Update)
		comments.DELETE("/c/:commentId", comment.Delete)
	}

	likes := v1.Group("/likes", auth.Authenticated)
	{
		likes.POST("/toggle/v/:videoId", like.ToggleVideo)
		likes.POST("/toggle/c/:commentId", like.ToggleComment)
		likes.POST("/toggle/t/:tweetId", like.ToggleTweet)
		likes.GET("/videos", like.LikedVideos)
	}

	subscriptions := v1.Group("/subscriptions", auth.Authenticated)
	{
		subscriptions.POST("/c/:channelId", subscription.Toggle)
		subscriptions.GET("/c/:channelId", subscription.Subscribers)
		subscriptions.GET("/u/:subscriberId", subscription.SubscribedChannels)
	}

	playlists := v1.Group("/playlist", auth.Authenticated)
	{
		playlists.POST("", playlist.Create)
		playlists.GET("/:playlistId", playlist.Get)
		playlists.GET("/user/:userId", playlist.ForUser)
		playlists.PATCH("/:playlistId", playlist.Update)
		playlists.DELETE("/:playlistId", playlist.Delete)
		playlists.PATCH("/add/:videoId/:playlistId", playlist.AddVideo)
		playlists.PATCH("/remove/:videoId/:playlistId", playlist.RemoveVideo)
	}

	tweets := v1.Group("/tweets", auth.Authenticated)
	{
		tweets.POST("", tweet.Create)
		tweets.GET("/user/:userId", tweet.ForUser)
		tweets.PATCH("/:tweetId", tweet.Update)
		tweets.DELETE("/:tweetId", tweet.Delete)
	}

	dash := v1.Group("/dashboard", auth.Authenticated)
	{
		dash.GET("/stats", dashboard.Stats)
		dash.GET("/videos", dashboard.Videos)
	}

	slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "ssl", cfg.SSL)

	if cfg.SSL {
		err = r.RunTLS(":"+cfg.Port, cfg.CertFile, cfg.KeyFile)
	} else {
		err = r.Run(":" + cfg.Port)
	}
	if err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
