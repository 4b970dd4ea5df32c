package main

import (
	"log/slog"

	"github.com/spf13/viper"

	"github.com/corinnekunze/amazon-purchase-search/internal/client"
	"github.com/corinnekunze/amazon-purchase-search/internal/config"
	"github.com/corinnekunze/amazon-purchase-search/internal/history"
	"github.com/corinnekunze/amazon-purchase-search/internal/session"
)

// newAPIClient builds the HTTP client from config.
func newAPIClient() *client.Client {
	return client.New(viper.GetString("server.url"), nil)
}

// openHistory opens the search-history store. History is a convenience,
// so a store that won't open downgrades to a warning instead of failing
// the command.
func openHistory() *history.Store {
	path := config.ExpandPath(viper.GetString("history.database"))
	store, err := history.NewStore(path)
	if err != nil {
		slog.Warn("Search history unavailable", "path", path, "error", err)
		return nil
	}
	return store
}

// newPipeline wires a fresh session, controller and searcher for one
// invocation. store may be nil.
func newPipeline(store *history.Store) (*session.Session, *session.Controller, *session.Searcher) {
	apiClient := newAPIClient()
	sess := session.NewSession()
	controller := session.NewController(apiClient, sess)

	var recorder session.Recorder
	if store != nil {
		recorder = store
	}
	searcher := session.NewSearcher(apiClient, sess, recorder)

	return sess, controller, searcher
}
