package session

import (
	"context"
	"io"
	"log/slog"

	"github.com/corinnekunze/amazon-purchase-search/internal/client"
)

// Controller turns a selected purchase-history file into an upload and
// flips the session to loaded when the server accepts it. It is the only
// writer of the session state.
type Controller struct {
	client  *client.Client
	session *Session
}

// NewController creates a Controller bound to one session.
func NewController(c *client.Client, s *Session) *Controller {
	return &Controller{client: c, session: s}
}

// Submit uploads one file. A nil reader or empty filename means nothing
// was selected: Submit is then a no-op and no request is issued. On any
// failure the session state is left untouched. Concurrent submissions
// are not deduplicated; each call issues its own request.
func (c *Controller) Submit(ctx context.Context, filename string, r io.Reader) (*client.UploadSummary, error) {
	if filename == "" || r == nil {
		return nil, nil
	}

	summary, err := c.client.Upload(ctx, filename, r)
	if err != nil {
		return nil, err
	}

	c.session.markLoaded(summary.TotalItems, summary.TotalOrders)
	slog.Info("Purchase history loaded",
		"total_items", summary.TotalItems,
		"total_orders", summary.TotalOrders)

	return summary, nil
}

// Refresh asks the server whether it already has data loaded, for
// invocations that did not perform the upload themselves. The session
// becomes loaded only if the server says so.
func (c *Controller) Refresh(ctx context.Context) error {
	health, err := c.client.Health(ctx)
	if err != nil {
		return err
	}
	if health.DataLoaded {
		c.session.markLoaded(health.TotalItems, health.TotalOrders)
	}
	return nil
}
