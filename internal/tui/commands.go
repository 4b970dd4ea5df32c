package tui

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/corinnekunze/amazon-purchase-search/internal/model"
)

// submitUpload opens the selected file and runs it through the upload
// controller off the UI goroutine.
func (m Model) submitUpload(path string) tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return uploadFailedMsg{err: err}
		}
		defer func() { _ = f.Close() }()

		summary, err := controller.Submit(context.Background(), filepath.Base(path), f)
		if err != nil {
			return uploadFailedMsg{err: err}
		}
		return uploadDoneMsg{summary: summary}
	}
}

// runSearch runs one search off the UI goroutine. No cancellation: a
// second search started while this one is pending proceeds
// independently.
func (m Model) runSearch(criteria model.Criteria) tea.Cmd {
	searcher := m.searcher
	return func() tea.Msg {
		results, err := searcher.Search(context.Background(), criteria)
		if err != nil {
			return searchFailedMsg{err: err}
		}
		return searchDoneMsg{results: results}
	}
}
