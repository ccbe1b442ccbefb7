package utility

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	firebaseApp   *firebase.App
	firebaseAuth  *auth.Client
	storageBucket *storage.BucketHandle
)

// findProjectDir walks up from the working directory until it finds the
// directory that contains config/env.
func findProjectDir() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", fmt.Errorf("project directory not found")
		}
		currentDir = parentDir
	}
}

// InitFirebase initializes the Firebase Admin SDK with auth and the default
// storage bucket.
func InitFirebase(projectID, credentialsPath, bucket string) error {
	if !filepath.IsAbs(credentialsPath) {
		projectDir, err := findProjectDir()
		if err != nil {
			return fmt.Errorf("cannot resolve credentials path: %w", err)
		}
		credentialsPath = filepath.Join(projectDir, credentialsPath)
	}

	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return fmt.Errorf("firebase credentials file not found: %s", credentialsPath)
	}

	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(context.Background(), &firebase.Config{
		ProjectID:     projectID,
		StorageBucket: bucket,
	}, opt)
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase app: %v", err)
	}
	firebaseApp = app

	authClient, err := app.Auth(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get Firebase Auth client: %v", err)
	}
	firebaseAuth = authClient

	storageClient, err := app.Storage(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get Firebase Storage client: %v", err)
	}
	bucketHandle, err := storageClient.DefaultBucket()
	if err != nil {
		return fmt.Errorf("failed to get default storage bucket: %v", err)
	}
	storageBucket = bucketHandle

	return nil
}

// GetFirebaseAuth returns the Firebase Auth client.
func GetFirebaseAuth() *auth.Client {
	return firebaseAuth
}

// GetStorageBucket returns the default storage bucket handle.
func GetStorageBucket() *storage.BucketHandle {
	return storageBucket
}

// VerifyIDToken verifies a Firebase ID token and returns its claims.
func VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if firebaseAuth == nil {
		return nil, fmt.Errorf("firebase auth not initialized")
	}

	token, err := firebaseAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %v", err)
	}
	return token, nil
}

// GetUserByUID fetches a Firebase user record by UID.
func GetUserByUID(ctx context.Context, uid string) (*auth.UserRecord, error) {
	if firebaseAuth == nil {
		return nil, fmt.Errorf("firebase auth not initialized")
	}

	user, err := firebaseAuth.GetUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return user, nil
}
