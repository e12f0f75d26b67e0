package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigReadsSecretsFromEnv(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "super-secret")
	t.Setenv("DB_USER", "trip")
	t.Setenv("DB_PASS", "thrive")

	LoadConfig()

	assert.Equal(t, "super-secret", AppConfig.AccessTokenSecret)
	assert.Equal(t, "trip", AppConfig.DBUser)
	assert.Equal(t, "thrive", AppConfig.DBPass)
}

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "5000", AppConfig.AppPort)
	assert.Equal(t, "http://localhost:5173", AppConfig.CORSOrigin)
}

func TestMongoURIPrefersClusterCredentials(t *testing.T) {
	AppConfig.DBUser = "trip"
	AppConfig.DBPass = "thrive"
	assert.Contains(t, MongoURI(), "mongodb+srv://trip:thrive@")

	AppConfig.DBUser = ""
	AppConfig.DBPass = ""
	AppConfig.DatabaseURL = "mongodb://localhost:27017"
	assert.Equal(t, "mongodb://localhost:27017", MongoURI())
}
