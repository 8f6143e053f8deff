package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/Shree2124/ngostream-backend/config"
)

var (
	firebaseApp    *firebase.App
	firebaseClient *messaging.Client
	firebaseOnce   sync.Once
	firebaseErr    error
)

// InitFirebase initializes the Firebase Admin SDK and FCM client. Push
// notifications are optional: a missing credentials file disables them
// without failing startup.
func InitFirebase(cfg *config.Config) error {
	firebaseOnce.Do(func() {
		ctx := context.Background()

		credentialsPath := cfg.FCMCredentialsPath
		if credentialsPath == "" {
			credentialsPath = "./serviceAccountKey.json"
		}

		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			firebaseErr = fmt.Errorf("firebase credentials file not found: %s", credentialsPath)
			return
		}
		if cfg.FCMProjectID == "" {
			firebaseErr = fmt.Errorf("FCM_PROJECT_ID is required for FCM")
			return
		}

		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FCMProjectID},
			option.WithCredentialsFile(credentialsPath))
		if err != nil {
			firebaseErr = fmt.Errorf("firebase app initialization failed: %w", err)
			return
		}

		client, err := app.Messaging(ctx)
		if err != nil {
			firebaseApp = app
			firebaseErr = fmt.Errorf("FCM client initialization failed: %w", err)
			return
		}

		firebaseApp = app
		firebaseClient = client
		log.Printf("✅ FCM client initialized for project %s", cfg.FCMProjectID)
	})

	return firebaseErr
}

// IsFCMEnabled reports whether push notifications are available.
func IsFCMEnabled() bool {
	return firebaseClient != nil
}

// SendPush delivers a push notification to one device token.
func SendPush(ctx context.Context, token, title, body string) error {
	if firebaseClient == nil {
		return fmt.Errorf("FCM not initialized")
	}
	_, err := firebaseClient.Send(ctx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	})
	return err
}
