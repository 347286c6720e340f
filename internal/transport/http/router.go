package http

import (
	"net/http"

	"AESCipherService/internal/config/serverConfig"
	"AESCipherService/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RunHTTPServer(config serverConfig.ServerConfig, services *service.Service) error {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	handler := NewCipherHandler(services)

	api := router.Group("/api/v1")
	{
		api.GET("/health", handler.HealthCheck)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", handler.Register)
			authGroup.POST("/login", handler.Login)
		}

		cipherGroup := api.Group("/cipher", AuthMiddleware())
		{
			cipherGroup.POST("/encrypt", handler.Encrypt)
			cipherGroup.POST("/decrypt", handler.Decrypt)
		}

		keyGroup := api.Group("/keys", AuthMiddleware())
		{
			keyGroup.POST("", handler.CreateKey)
			keyGroup.GET("", handler.ListKeys)
			keyGroup.GET("/:id", handler.GetKey)
		}
	}

	srv := &http.Server{
		Addr:         config.Address,
		Handler:      router,
		ReadTimeout:  config.TimeOut,
		WriteTimeout: config.TimeOut,
	}

	return srv.ListenAndServe()
}
