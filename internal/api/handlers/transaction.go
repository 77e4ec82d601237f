package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/byonar/Rep-Rakbank-POC-Kafka-Bronze-Webhook-APIKey/internal/models"
	"github.com/byonar/Rep-Rakbank-POC-Kafka-Bronze-Webhook-APIKey/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type TransactionHandler struct {
	txLog *store.TransactionLog
	log   *logrus.Logger
}

func NewTransactionHandler(txLog *store.TransactionLog, log *logrus.Logger) *TransactionHandler {
	return &TransactionHandler{
		txLog: txLog,
		log:   log,
	}
}

// Receive ingests a single transaction pushed by the HTTP sink.
func (h *TransactionHandler) Receive(c *gin.Context) {
	var input models.UserTransaction
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	stored := h.txLog.Append(models.Transaction{UserTransaction: input})

	h.log.WithFields(logrus.Fields{
		"user":        stored.User(),
		"creator":     stored.CreatUsrNbr,
		"sequence_id": stored.SequenceID,
		"request_id":  c.GetString("request_id"),
	}).Info("[POC] Transaction received")

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"message":     "User transaction received successfully",
		"sequence_id": stored.SequenceID,
		"user":        stored.Usrname,
		"received_at": stored.ReceivedAt,
	})
}

// ReceiveBatch ingests an ordered batch of transactions. One batch id,
// computed at call start, is shared by every record; each record still gets
// its own sequence id. Records already appended when a failure hits stay in
// the log.
func (h *TransactionHandler) ReceiveBatch(c *gin.Context) {
	var inputs []models.UserTransaction
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	batchID := time.Now().Format("20060102_150405")
	receivedCount := 0
	for _, input := range inputs {
		stored := h.txLog.Append(models.Transaction{
			UserTransaction: input,
			BatchID:         batchID,
		})
		receivedCount++

		h.log.WithFields(logrus.Fields{
			"user":        stored.User(),
			"batch_id":    batchID,
			"sequence_id": stored.SequenceID,
			"request_id":  c.GetString("request_id"),
		}).Info("[POC BATCH] Transaction received")
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"message":        fmt.Sprintf("Batch of %d transactions received successfully", receivedCount),
		"batch_id":       batchID,
		"total_received": h.txLog.Count(),
	})
}

// ListRecent returns the last 10 received transactions.
func (h *TransactionHandler) ListRecent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total_count":          h.txLog.Count(),
		"last_10_transactions": h.txLog.Last(10),
		"last_updated":         time.Now().Format(time.RFC3339Nano),
		"poc_status":           "active",
	})
}

// Stats aggregates the log: distinct usernames plus first/last receipt
// timestamps.
func (h *TransactionHandler) Stats(c *gin.Context) {
	all := h.txLog.All()
	if len(all) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message":     "No transactions received yet",
			"total_count": 0,
			"status":      "waiting_for_data",
		})
		return
	}

	seen := make(map[string]struct{})
	userList := make([]string, 0, len(all))
	for _, tx := range all {
		name := tx.User()
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		userList = append(userList, name)
	}

	c.JSON(http.StatusOK, gin.H{
		"total_transactions": len(all),
		"unique_users":       len(userList),
		"user_list":          userList,
		"first_transaction":  all[0].ReceivedAt,
		"last_transaction":   all[len(all)-1].ReceivedAt,
		"poc_status":         "collecting_data",
	})
}
