package session

import (
	"context"
	"log/slog"

	"github.com/corinnekunze/amazon-purchase-search/internal/client"
	"github.com/corinnekunze/amazon-purchase-search/internal/display"
	"github.com/corinnekunze/amazon-purchase-search/internal/model"
)

// Recorder persists a completed search. The history store implements it;
// a nil Recorder disables recording.
type Recorder interface {
	Record(ctx context.Context, criteria model.Criteria, rs *display.ResultSet) error
}

// Searcher runs the full search pipeline: precondition check, request,
// normalization, optional history recording.
type Searcher struct {
	client   *client.Client
	session  *Session
	recorder Recorder
}

// NewSearcher creates a Searcher. recorder may be nil.
func NewSearcher(c *client.Client, s *Session, recorder Recorder) *Searcher {
	return &Searcher{client: c, session: s, recorder: recorder}
}

// Search runs one search. While the session is empty it fails with
// ErrNoDataLoaded without issuing any request. Overlapping searches are
// not serialized or canceled; each call stands alone.
func (s *Searcher) Search(ctx context.Context, criteria model.Criteria) (*display.ResultSet, error) {
	if err := s.session.EnsureLoaded(); err != nil {
		return nil, err
	}

	raw, err := s.client.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	rs := display.Normalize(raw)

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, criteria, rs); err != nil {
			// History is best-effort; a failed write never fails the search.
			slog.Warn("Failed to record search history", "error", err)
		}
	}

	return rs, nil
}
