package common

import (
	"fmt"
	"os"
)

var (
	// ProjectID is the GCP project hosting Firestore, Cloud Storage and logging.
	ProjectID string

	// Production flag indicating if the app is running against the production project.
	Production bool

	// Env is the deploy environment name reported by the health endpoint.
	Env string
)

const (
	// TestProjectID is used by package tests that need a firestore client.
	TestProjectID = "shopcore-commerce-dev"

	productionProject = "shopcore-commerce-prod"
)

func init() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", TestProjectID)
	Env = GetEnv("APP_ENV", "development")
	Production = ProjectID == productionProject
}

// GetEnv returns the value of the environment variable or a fallback.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

// GetAvatarsBucket returns the bucket holding customer profile pictures.
func GetAvatarsBucket() string {
	if Production {
		return "shopcore-avatars"
	}

	return fmt.Sprintf("%s-avatars", ProjectID)
}

// GetExportsBucket returns the bucket that scheduled customer exports are written to.
func GetExportsBucket() string {
	if Production {
		return "shopcore-exports"
	}

	return fmt.Sprintf("%s-exports", ProjectID)
}
