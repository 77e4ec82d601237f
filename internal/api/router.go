package api

import (
	"fmt"
	"net/http"

	"github.com/byonar/Rep-Rakbank-POC-Kafka-Bronze-Webhook-APIKey/internal/api/handlers"
	"github.com/byonar/Rep-Rakbank-POC-Kafka-Bronze-Webhook-APIKey/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func NewRouter(log *logrus.Logger, txLog *store.TransactionLog, secret string) *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	// Anything a handler panics on becomes a ProcessingError response;
	// records appended before the failure stay in the log.
	router.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		log.WithField("request_id", c.GetString("request_id")).
			Errorf("[POC ERROR] Failed to process request: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"detail": fmt.Sprintf("Error processing transaction: %v", err),
		})
	}))

	// Initialize the handlers
	transactionHandler := handlers.NewTransactionHandler(txLog, log)
	statusHandler := handlers.NewStatusHandler(txLog)

	// Public routes
	router.GET("/", statusHandler.Root)
	router.GET("/health", statusHandler.Health)

	// Everything below requires the shared secret
	guarded := router.Group("/", RequireWebhookToken(secret, log))
	{
		webhook := guarded.Group("/webhook/user-transactions")
		{
			webhook.POST("", transactionHandler.Receive)
			webhook.POST("/batch", transactionHandler.ReceiveBatch)
			webhook.GET("", transactionHandler.ListRecent)
		}

		guarded.GET("/poc/stats", transactionHandler.Stats)
	}

	return router
}
