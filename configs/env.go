package configs

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// env reads a variable after loading .env exactly once. A missing .env file
// is fine in deployments where variables come from the process environment.
func env(key, fallback string) string {
	loadOnce.Do(func() {
		_ = godotenv.Load()
	})
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func EnvMongoURI() string {
	return env("MONGO_URI", "mongodb://localhost:27017")
}

func EnvDatabaseName() string {
	return env("MONGO_DB", "mystorx")
}

func EnvPort() string {
	return env("PORT", "5000")
}

func EnvJWTSecret() string {
	return env("JWT_SECRET", "")
}

func EnvFrontendURL() string {
	return env("FRONTEND_URL", "http://localhost:3000")
}

func EnvBrevoAPIKey() string {
	return env("BREVO_API_KEY", "")
}

func EnvFromEmail() string {
	return env("FROM_EMAIL", "onboarding@brevo.com")
}

func EnvMLServiceURL() string {
	return env("ML_SERVICE_URL", "")
}

func EnvMLRetrainURL() string {
	return env("ML_RETRAIN_URL", "")
}

func EnvProductSourceURL() string {
	return env("PRODUCT_SOURCE_URL", "https://fakestoreapi.com/products")
}

func EnvCloudinaryCloudName() string {
	return env("CLOUDINARY_CLOUD_NAME", "")
}

func EnvCloudinaryAPIKey() string {
	return env("CLOUDINARY_API_KEY", "")
}

func EnvCloudinaryAPISecret() string {
	return env("CLOUDINARY_API_SECRET", "")
}

func EnvUPIID() string {
	return env("UPI_ID", "8885674269@ybl")
}

func EnvUPIPayeeName() string {
	return env("UPI_PAYEE_NAME", "MystorX")
}
