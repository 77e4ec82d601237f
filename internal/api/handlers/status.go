package handlers

import (
	"net/http"
	"time"

	"github.com/byonar/Rep-Rakbank-POC-Kafka-Bronze-Webhook-APIKey/internal/store"

	"github.com/gin-gonic/gin"
)

const serviceName = "Rakbank POC Kafka Webhook V2"

// StatusHandler serves the unauthenticated banner and liveness endpoints.
type StatusHandler struct {
	txLog *store.TransactionLog
}

func NewStatusHandler(txLog *store.TransactionLog) *StatusHandler {
	return &StatusHandler{
		txLog: txLog,
	}
}

func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":        "Rakbank POC Kafka User Transaction Webhook Service (Secure V2)",
		"status":         "running",
		"timestamp":      time.Now().Format(time.RFC3339Nano),
		"total_received": h.txLog.Count(),
		"service_info": gin.H{
			"source":  "Confluent Cloud Flink",
			"topic":   "user_trans_hst_avro",
			"purpose": "POC webhook endpoint with SharedKey",
		},
	})
}

// Health never requires the token; it has to stay usable as a liveness
// probe even when the secret is missing.
func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"timestamp":          time.Now().Format(time.RFC3339Nano),
		"service":            serviceName,
		"total_transactions": h.txLog.Count(),
	})
}
