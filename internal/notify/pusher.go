package notify

import (
	"github.com/pusher/pusher-http-go/v5"
)

// PusherNotifier delivers events through the Pusher Channels HTTP API.
type PusherNotifier struct {
	client pusher.Client
}

// NewPusherNotifier creates a notifier for the given Pusher app credentials.
func NewPusherNotifier(appID, key, secret, cluster string) *PusherNotifier {
	return &PusherNotifier{
		client: pusher.Client{
			AppID:   appID,
			Key:     key,
			Secret:  secret,
			Cluster: cluster,
		},
	}
}

// Trigger pushes event with payload onto channel.
func (n *PusherNotifier) Trigger(channel, event string, payload any) error {
	return n.client.Trigger(channel, event, payload)
}
