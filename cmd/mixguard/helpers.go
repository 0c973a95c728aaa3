package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/mixguard/mixguard/internal/backend"
	"github.com/mixguard/mixguard/internal/common"
	"github.com/mixguard/mixguard/internal/kb"
	"github.com/mixguard/mixguard/internal/pipeline"
	"github.com/mixguard/mixguard/internal/storage"
)

// loadKnowledgeBase opens the configured SQLite knowledge base, or falls
// back to the embedded tables when none is configured.
func loadKnowledgeBase(ctx context.Context) (*kb.KnowledgeBase, error) {
	dbPath := viper.GetString("kb.path")
	if dbPath == "" {
		return kb.Default(), nil
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError("failed to open knowledge base", err)
	}
	defer func() { _ = store.Close() }()

	knowledge, err := store.LoadKnowledgeBase(ctx)
	if err != nil {
		return nil, common.NewUserError("failed to load knowledge base", err)
	}

	slog.Debug("loaded knowledge base",
		"path", dbPath,
		"chemicals", len(knowledge.Chemicals()),
		"rules", len(knowledge.Rules()))

	return knowledge, nil
}

// newResolver builds the resolution pipeline from configuration.
func newResolver(ctx context.Context) (*pipeline.Resolver, error) {
	knowledge, err := loadKnowledgeBase(ctx)
	if err != nil {
		return nil, err
	}

	client, err := backend.NewHTTPClient(backend.Config{
		Endpoint: viper.GetString("backend.endpoint"),
		APIKey:   viper.GetString("backend.api_key"),
		Timeout:  viper.GetDuration("backend.timeout"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}

	return pipeline.New(knowledge, client, slog.Default()), nil
}
