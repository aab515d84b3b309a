package notify

import "log"

// LogNotifier is the stand-in used when Pusher credentials are not
// configured: events are logged and otherwise dropped.
type LogNotifier struct{}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Trigger logs the event instead of delivering it.
func (*LogNotifier) Trigger(channel, event string, _ any) error {
	log.Printf("notify: %s on channel %s (pusher disabled)", event, channel)
	return nil
}
