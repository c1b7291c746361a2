// Package sqsplugin attaches a queue adapter to the server toolkit under the name "sqs".
package sqsplugin

import (
	"context"

	sqsadapter "queue.service/internal/adapters/sqs"
	"queue.service/internal/server"
)

const (
	// Name identifies the plugin in the server registry.
	Name = "hapi-sqs"
	// DecorationName is the toolkit key the adapter is stored under.
	DecorationName = "sqs"
)

// Plugin registers one queue adapter on a server.
type Plugin struct {
	opts sqsadapter.Options
}

// New returns a plugin that builds its adapter from opts when registered.
func New(opts sqsadapter.Options) *Plugin {
	return &Plugin{opts: opts}
}

func (p *Plugin) Name() string {
	return Name
}

// Register builds one adapter and decorates srv with it.
func (p *Plugin) Register(ctx context.Context, srv *server.Server) error {
	adapter, err := sqsadapter.New(ctx, p.opts)
	if err != nil {
		return err
	}

	return srv.Decorate(DecorationName, adapter)
}

// FromContext returns the adapter decorated on the server handling the request.
// Handlers that depend on an interface instead can read DecorationName from
// server.FromContext directly.
func FromContext(ctx context.Context) (*sqsadapter.Adapter, bool) {
	v, ok := server.FromContext(ctx).Get(DecorationName)
	if !ok {
		return nil, false
	}

	adapter, ok := v.(*sqsadapter.Adapter)
	return adapter, ok
}
