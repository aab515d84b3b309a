package upload

import (
	"context"
	"log"
	"net/url"
	"time"
)

// FileInfo describes one uploaded file as reported to the client and kept as
// the pending-status payload. Never mutated after construction.
type FileInfo struct {
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	Type       string `json:"type"`
	DeleteType string `json:"delete_type"`
	DeleteURL  string `json:"delete_url"`
	URL        string `json:"url"`
}

// Signer produces a time-limited GET URL for a private object.
type Signer interface {
	SignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}

// NewFileInfo builds the client-facing record for one file. Public policies
// get the direct bucket URL; private policies get a signed GET URL instead.
// The delete URL is always the direct form: deletion is an authenticated
// server-side operation and the URL is informational only.
func NewFileInfo(ctx context.Context, name string, size int64, contentType string, opts Options, endpoint string, signer Signer) FileInfo {
	direct := directURL(name, opts, endpoint)

	info := FileInfo{
		Name:       name,
		Size:       size,
		Type:       contentType,
		DeleteType: "DELETE",
		DeleteURL:  direct,
		URL:        direct,
	}

	if !opts.publicPolicy() && signer != nil {
		expires := time.Duration(opts.SignedURLExpiration) * time.Second
		signed, err := signer.SignedURL(ctx, objectKey(name, opts), expires)
		if err != nil {
			log.Printf("upload: signing url for %q: %v", name, err)
		} else {
			info.URL = signed
		}
	}

	return info
}

// objectKey is the storage key a file is written under.
func objectKey(name string, opts Options) string {
	return opts.UploadPath + "/" + name
}

func directURL(name string, opts Options, endpoint string) string {
	scheme := "http"
	if opts.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + opts.Bucket + "." + endpoint + "/" + opts.UploadPath + "/" + url.PathEscape(name)
}
