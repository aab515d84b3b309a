package upload

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dtmtec/cloud-uploader/internal/config"
	"github.com/dtmtec/cloud-uploader/internal/notify"
	"github.com/dtmtec/cloud-uploader/internal/sanitize"
	"github.com/dtmtec/cloud-uploader/internal/status"
	"github.com/dtmtec/cloud-uploader/internal/storage"
	"github.com/dtmtec/cloud-uploader/internal/token"
)

// maxFieldSize caps how many bytes a single non-file form field may carry.
const maxFieldSize = 20 << 20

// Service orchestrates multipart uploads: it consumes the form stream part
// by part, gates on the access token, spools file parts to local temp files,
// streams them to blob storage asynchronously, and settles each file's
// status entry.
type Service struct {
	cfg      *config.Config
	store    storage.Storage
	status   *status.Store
	notifier notify.Notifier
	tokens   *token.Validator

	wg sync.WaitGroup // in-flight storage transfers
}

// NewService wires the orchestrator. A nil validator (no secret configured)
// means every request is authorized and token fields are ignored.
func NewService(cfg *config.Config, store storage.Storage, st *status.Store, notifier notify.Notifier) *Service {
	var v *token.Validator
	if cfg.Secret != "" {
		v = token.NewValidator(cfg.Secret, time.Duration(cfg.SecretExpiration)*time.Second)
	}
	return &Service{
		cfg:      cfg,
		store:    store,
		status:   st,
		notifier: notifier,
		tokens:   v,
	}
}

// Result is the outcome of parsing one upload request.
type Result struct {
	Authorized bool
	Files      []FileInfo
	Redirect   string
}

// receivedFile is what the parse loop records per file part, in arrival order.
type receivedFile struct {
	name        string
	size        int64
	contentType string
}

// Process consumes the multipart stream and drives the per-file state
// machine. It returns once the form is fully parsed; storage transfers keep
// running in the background and are observable via the status store and the
// notifier. A decode error mid-stream is logged and ends the loop with
// whatever was accumulated.
func (s *Service) Process(ctx context.Context, form *multipart.Reader) Result {
	opts := OptionsFromConfig(s.cfg)
	channel := s.cfg.ChannelName
	authorized := s.tokens == nil
	redirect := ""

	var files []receivedFile

	for {
		part, err := form.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("upload: form parse: %v", err)
			break
		}

		if !isFilePart(part) {
			s.handleField(part, &opts, &authorized, &channel, &redirect)
			continue
		}

		name := sanitize.Filename(part.FileName())
		contentType := part.Header.Get("Content-Type")

		tmp, size, err := spool(part)
		if err != nil {
			log.Printf("upload: spooling %q: %v", name, err)
			continue
		}
		files = append(files, receivedFile{name: name, size: size, contentType: contentType})

		if !authorized {
			// The part was consumed and is reported in the response, but
			// nothing is stored remotely and no status entry is written.
			log.Printf("upload: invalid token, not uploading %q", name)
			removeTemp(tmp)
			continue
		}

		info := s.fileInfo(ctx, name, size, contentType, opts)
		if err := s.status.MarkPending(ctx, name, info); err != nil {
			log.Printf("upload: marking %q pending: %v", name, err)
		}

		s.wg.Add(1)
		go s.transfer(tmp, name, size, contentType, opts, channel)
	}

	infos := make([]FileInfo, 0, len(files))
	for _, f := range files {
		infos = append(infos, s.fileInfo(ctx, f.name, f.size, f.contentType, opts))
	}

	return Result{Authorized: authorized, Files: infos, Redirect: redirect}
}

// Wait blocks until every in-flight storage transfer has settled. Called
// during graceful shutdown.
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) handleField(part *multipart.Part, opts *Options, authorized *bool, channel, redirect *string) {
	name := part.FormName()
	value, err := readField(part)
	if err != nil {
		log.Printf("upload: reading field %q: %v", name, err)
		return
	}

	switch {
	case name == fieldToken && s.tokens != nil:
		*authorized = s.tokens.Valid(value, time.Now())
	case name == fieldChannel:
		*channel = value
	case name == fieldRedirect:
		*redirect = value
	default:
		opts.Set(name, value)
	}
}

// transfer streams a spooled temp file to blob storage and settles the
// file's status entry. It runs detached from the request: the HTTP response
// does not wait for it, and the client closing the connection does not
// cancel it.
func (s *Service) transfer(tmp, name string, size int64, contentType string, opts Options, channel string) {
	defer s.wg.Done()

	ctx := context.Background()
	start := time.Now()

	err := func() error {
		f, err := os.Open(tmp)
		if err != nil {
			return err
		}
		defer f.Close()
		return s.store.Upload(ctx, objectKey(name, opts), f, size, contentType, opts.Policy)
	}()

	if err != nil {
		log.Printf("upload: %q to bucket %q failed after %s: %v", name, opts.Bucket, time.Since(start), err)
		if serr := s.status.MarkFailed(ctx, name); serr != nil {
			log.Printf("upload: marking %q failed: %v", name, serr)
		}
		s.trigger(channel, notify.EventUploadFailed, map[string]string{
			"name":  name,
			"error": err.Error(),
		})
	} else {
		log.Printf("upload: %q to bucket %q completed in %s", name, opts.Bucket, time.Since(start))
		if serr := s.status.Clear(ctx, name); serr != nil {
			log.Printf("upload: clearing status for %q: %v", name, serr)
		}
		s.trigger(channel, notify.EventUploadCompleted, s.fileInfo(ctx, name, size, contentType, opts))
	}

	removeTemp(tmp)
}

func (s *Service) trigger(channel, event string, payload any) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Trigger(channel, event, payload); err != nil {
		log.Printf("notify: trigger %s on %s: %v", event, channel, err)
	}
}

func (s *Service) fileInfo(ctx context.Context, name string, size int64, contentType string, opts Options) FileInfo {
	return NewFileInfo(ctx, name, size, contentType, opts, s.cfg.S3Endpoint, s.store)
}

// spool drains the part into a local temp file, keeping the filename
// extension, and reports the byte count.
func spool(part *multipart.Part) (path string, size int64, err error) {
	f, err := os.CreateTemp("", "upload-*"+filepath.Ext(part.FileName()))
	if err != nil {
		return "", 0, err
	}

	size, err = io.Copy(f, part)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		removeTemp(f.Name())
		return "", 0, err
	}
	return f.Name(), size, nil
}

// removeTemp deletes a spooled file, best-effort.
func removeTemp(path string) {
	if err := os.Remove(path); err != nil {
		log.Printf("upload: removing temp file %q: %v", path, err)
	}
}

// isFilePart distinguishes file parts from plain fields by the presence of a
// filename parameter in the Content-Disposition header. Part.FileName alone
// cannot tell filename="" apart from no filename at all.
func isFilePart(part *multipart.Part) bool {
	_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
	if err != nil {
		return false
	}
	_, ok := params["filename"]
	return ok
}

func readField(part *multipart.Part) (string, error) {
	b, err := io.ReadAll(io.LimitReader(part, maxFieldSize+1))
	if err != nil {
		return "", err
	}
	if len(b) > maxFieldSize {
		return "", fmt.Errorf("field exceeds %d bytes", maxFieldSize)
	}
	return string(b), nil
}
