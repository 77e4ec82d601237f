// cmd/sendtest/main.go
//
// Manual smoke test: posts one single and one batch submission to a running
// instance and prints the acknowledgements.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/byonar/Rep-Rakbank-POC-Kafka-Bronze-Webhook-APIKey/config"
	"github.com/byonar/Rep-Rakbank-POC-Kafka-Bronze-Webhook-APIKey/internal/models"

	"github.com/sirupsen/logrus"
)

func post(url, token string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Token", token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, b), nil
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadAPIConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	base := os.Getenv("WEBHOOK_URL")
	if base == "" {
		base = fmt.Sprintf("http://localhost:%s", cfg.API_PORT)
	}

	username := "smoke_test"
	creator := int64(42)
	single := models.UserTransaction{
		Usrname:     &username,
		CreatUsrNbr: &creator,
	}

	out, err := post(base+"/webhook/user-transactions", cfg.WebhookToken, single)
	if err != nil {
		log.Fatalf("Single submission failed: %v", err)
	}
	fmt.Println(out)

	batch := []models.UserTransaction{single, {Usrname: &username}}
	out, err = post(base+"/webhook/user-transactions/batch", cfg.WebhookToken, batch)
	if err != nil {
		log.Fatalf("Batch submission failed: %v", err)
	}
	fmt.Println(out)
}
