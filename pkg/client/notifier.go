package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	// NotifierPath is the path of the backend's change notification websocket
	NotifierPath = "/ws/"

	notifierRequest = "next"
	notifierSignal  = "go"
)

// Notifier subscribes to the backend's change notifications.
//
// The protocol is request/response: the client sends any text frame and the
// server answers "go" as soon as a pipeline or job state changed.
type Notifier struct {
	url    string
	dialer *websocket.Dialer
	tokens TokenSource
}

// TokenSource returns the tokens currently in use, such as Client.Tokens.
type TokenSource func() Tokens

// NewNotifier returns a notifier for the CI backend at the given http(s) uri.
// tokens is read on every Subscribe, so that refreshed tokens are used; it may be nil.
func NewNotifier(uri string, tokens TokenSource) (*Notifier, error) {
	u, err := url.Parse(strings.TrimRight(uri, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse uri %s", uri)
	}
	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return nil, errors.Errorf("unsupported scheme %s", u.Scheme)
	}
	u.Path += NotifierPath

	return &Notifier{
		url:    u.String(),
		dialer: websocket.DefaultDialer,
		tokens: tokens,
	}, nil
}

func (n *Notifier) header() http.Header {
	header := http.Header{}
	if n.tokens == nil {
		return header
	}
	if t := n.tokens(); t.Access != "" {
		header.Set("authorization", "Bearer "+t.Access)
	}
	return header
}

// URL returns the websocket url of the notifier.
func (n *Notifier) URL() string {
	return n.url
}

// Subscribe connects to the backend and returns a channel receiving a value for each change.
// Changes not yet consumed are coalesced into one.
// The channel is closed when ctx is done or the connection is lost.
func (n *Notifier) Subscribe(ctx context.Context) (<-chan struct{}, error) {
	conn, _, err := n.dialer.DialContext(ctx, n.url, n.header())
	if err != nil {
		return nil, errors.Wrapf(err, "cannot connect to %s", n.url)
	}

	ch := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		// Closing the connection unblocks ReadMessage.
		select {
		case <-ctx.Done():
		case <-done:
		}
		conn.Close()
	}()
	go func() {
		defer close(ch)
		defer close(done)
		for {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(notifierRequest)); err != nil {
				return
			}
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if string(msg) != notifierSignal {
				continue
			}
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}()
	return ch, nil
}
