package upload

import (
	"strconv"

	"github.com/dtmtec/cloud-uploader/internal/config"
)

// Form fields with reserved meanings; every other field name is treated as
// a per-request option override.
const (
	fieldToken    = "token"
	fieldChannel  = "channel"
	fieldRedirect = "redirect"
)

// Options are the upload settings in effect for one request: seeded from the
// server-wide defaults, then overlaid by non-reserved form fields as they
// arrive. The shared secret and its expiration window are deliberately not
// part of this set.
type Options struct {
	Bucket              string
	UploadPath          string
	Policy              string
	UseSSL              bool
	SignedURLExpiration int
}

// OptionsFromConfig derives a request-scoped copy of the configured defaults.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Bucket:              cfg.Bucket,
		UploadPath:          cfg.UploadPath,
		Policy:              cfg.Policy,
		UseSSL:              cfg.UseSSL,
		SignedURLExpiration: cfg.SignedURLExpiration,
	}
}

// Set applies a per-request override by form-field name. Unknown names and
// unparseable values are ignored.
func (o *Options) Set(name, value string) {
	switch name {
	case "bucket":
		o.Bucket = value
	case "uploadPath":
		o.UploadPath = value
	case "policy":
		o.Policy = value
	case "useSSL":
		o.UseSSL = value != "" && value != "false"
	case "signedUrlExpiration":
		if n, err := strconv.Atoi(value); err == nil {
			o.SignedURLExpiration = n
		}
	}
}

// publicPolicy reports whether objects stored under these options are
// world-readable, in which case the direct bucket URL works unsigned.
func (o Options) publicPolicy() bool {
	return o.Policy == "public-read" || o.Policy == "public-read-write"
}
