// Package notify defines the pub/sub push capability used to tell
// out-of-band subscribers how an upload ended.
package notify

// Event names pushed on the configured channel.
const (
	EventUploadCompleted = "upload-completed"
	EventUploadFailed    = "upload-failed"
)

// Notifier sends a named event with a payload to a channel.
type Notifier interface {
	Trigger(channel, event string, payload any) error
}
