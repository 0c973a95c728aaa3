// Package pipeline orchestrates the resolution of a chemical pair into a
// reaction result: normalize both inputs, try the local rule table, and fall
// back to remote analysis. Resolution never fails outward; every path ends in
// a well-formed result.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/mixguard/mixguard/internal/backend"
	"github.com/mixguard/mixguard/internal/interpret"
	"github.com/mixguard/mixguard/internal/kb"
	"github.com/mixguard/mixguard/internal/model"
)

// Resolver sequences the resolution pipeline. Safe for concurrent use; the
// knowledge base is read-only and each invocation is independent.
type Resolver struct {
	kb      *kb.KnowledgeBase
	backend backend.Client
	logger  *slog.Logger
}

// New creates a resolver over the given knowledge base and backend client.
func New(knowledge *kb.KnowledgeBase, client backend.Client, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		kb:      knowledge,
		backend: client,
		logger:  logger,
	}
}

// Resolve determines the reaction outcome for two raw chemical inputs. It
// never returns an error: local knowledge is consulted first, then the remote
// analysis backend, and any backend failure is absorbed into the fixed
// fallback result. The result is always stamped with the original raw inputs
// and a fresh timestamp.
func (r *Resolver) Resolve(ctx context.Context, raw1, raw2 string) model.ReactionResult {
	a := r.kb.Normalize(raw1)
	b := r.kb.Normalize(raw2)

	if a != nil && b != nil {
		if outcome := r.kb.Match(a, b); outcome != nil {
			source := model.SourceLocalRule
			if a.ID == b.ID {
				source = model.SourceSameSubstance
			}
			r.logger.Debug("resolved locally",
				"chem1", a.ID,
				"chem2", b.ID,
				"level", outcome.Level)
			return r.newResult(raw1, raw2, *outcome, source)
		}
	}

	payload, err := r.backend.Analyze(ctx, raw1, raw2)
	if err != nil {
		r.logger.Warn("remote analysis failed, using fallback result",
			"chem1", raw1,
			"chem2", raw2,
			"error", err)
		return r.newResult(raw1, raw2, FallbackOutcome(), model.SourceFallback)
	}

	outcome := interpret.Outcome(payload)
	r.logger.Debug("resolved remotely",
		"chem1", raw1,
		"chem2", raw2,
		"level", outcome.Level)
	return r.newResult(raw1, raw2, outcome, model.SourceRemoteAnalysis)
}

func (r *Resolver) newResult(raw1, raw2 string, outcome model.ReactionOutcome, source model.ResultSource) model.ReactionResult {
	return model.ReactionResult{
		ReactionOutcome: outcome,
		Chemical1:       raw1,
		Chemical2:       raw2,
		Source:          source,
		CheckedAt:       time.Now(),
	}
}

// FallbackOutcome is the fixed result content used when remote analysis
// fails. Unknown here is a first-class displayable state, not an error.
func FallbackOutcome() model.ReactionOutcome {
	return model.ReactionOutcome{
		Level:       model.LevelUnknown,
		Title:       "Analysis Failed",
		Explanation: "The reaction could not be analyzed. Treat the combination as hazardous until a reliable source says otherwise.",
		Recommendations: []string{
			"Do not mix the substances.",
			"Consult a safety data sheet for each substance.",
			"Ask a qualified chemist before proceeding.",
		},
	}
}
