package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtmtec/cloud-uploader/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Bucket:              "mybucket",
		S3Endpoint:          "s3.amazonaws.com",
		UploadPath:          "uploads",
		Policy:              "public-read",
		UseSSL:              false,
		SignedURLExpiration: 900,
		SecretExpiration:    600,
		ChannelName:         "cloud-uploader",
		AllowOrigin:         "*",
		AllowMethods:        "OPTIONS, GET, POST",
	}
}

func TestOptionsFromConfig(t *testing.T) {
	opts := OptionsFromConfig(testConfig())

	assert.Equal(t, "mybucket", opts.Bucket)
	assert.Equal(t, "uploads", opts.UploadPath)
	assert.Equal(t, "public-read", opts.Policy)
	assert.False(t, opts.UseSSL)
	assert.Equal(t, 900, opts.SignedURLExpiration)
}

func TestOptionsSetOverrides(t *testing.T) {
	opts := OptionsFromConfig(testConfig())

	opts.Set("bucket", "other")
	opts.Set("uploadPath", "incoming")
	opts.Set("policy", "private")
	opts.Set("useSSL", "true")
	opts.Set("signedUrlExpiration", "60")

	assert.Equal(t, "other", opts.Bucket)
	assert.Equal(t, "incoming", opts.UploadPath)
	assert.Equal(t, "private", opts.Policy)
	assert.True(t, opts.UseSSL)
	assert.Equal(t, 60, opts.SignedURLExpiration)
}

func TestOptionsSetIgnoresUnknownAndMalformed(t *testing.T) {
	opts := OptionsFromConfig(testConfig())

	opts.Set("no-such-option", "whatever")
	opts.Set("signedUrlExpiration", "soon")

	assert.Equal(t, OptionsFromConfig(testConfig()), opts)
}

func TestOptionsSetUseSSLFalseString(t *testing.T) {
	opts := OptionsFromConfig(testConfig())
	opts.UseSSL = true

	opts.Set("useSSL", "false")
	assert.False(t, opts.UseSSL)

	opts.Set("useSSL", "anything-else")
	assert.True(t, opts.UseSSL)
}

func TestPublicPolicy(t *testing.T) {
	opts := Options{Policy: "public-read"}
	assert.True(t, opts.publicPolicy())

	opts.Policy = "public-read-write"
	assert.True(t, opts.publicPolicy())

	opts.Policy = "private"
	assert.False(t, opts.publicPolicy())

	opts.Policy = "authenticated-read"
	assert.False(t, opts.publicPolicy())
}
