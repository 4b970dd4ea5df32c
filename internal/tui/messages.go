package tui

import (
	"github.com/corinnekunze/amazon-purchase-search/internal/client"
	"github.com/corinnekunze/amazon-purchase-search/internal/display"
)

// Async operation results. Each in-flight upload or search posts exactly
// one of these when it resolves; overlapping operations are not
// serialized, so whichever message arrives last determines what is
// shown.

type uploadDoneMsg struct {
	summary *client.UploadSummary
}

type uploadFailedMsg struct {
	err error
}

type searchDoneMsg struct {
	results *display.ResultSet
}

type searchFailedMsg struct {
	err error
}
