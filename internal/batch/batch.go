package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/fundpulse/internal/domain/models"
	"github.com/guttosm/fundpulse/internal/logger"
	"github.com/guttosm/fundpulse/internal/service"
)

// Orchestrator fans a batch of fund codes out over the FundService with a
// bounded concurrency level, collecting successes and per-code failures
// independently.
type Orchestrator struct {
	svc      service.FundService
	maxCodes int
	parallel int
}

// NewOrchestrator builds an Orchestrator. maxCodes caps the accepted batch
// size; parallel bounds how many funds are fetched at once so the upstream
// provider is not overwhelmed.
func NewOrchestrator(svc service.FundService, maxCodes, parallel int) *Orchestrator {
	if maxCodes <= 0 {
		maxCodes = 20
	}
	if parallel <= 0 {
		parallel = 5
	}
	return &Orchestrator{svc: svc, maxCodes: maxCodes, parallel: parallel}
}

// Run executes the batch.
//
// Validation happens before any fetch: an empty batch, a batch over the
// cap, or any malformed code rejects the whole request with a
// ValidationError. Duplicate codes are each processed independently, since
// callers may rely on positional correspondence.
//
// The batch is best-effort, not fail-fast: every code's outcome is routed
// to successes or to the errors map on its own, and Run waits for all of
// them. Successes are appended as they complete, so their order is not the
// input order; callers needing correspondence should key by fund code.
func (o *Orchestrator) Run(ctx context.Context, codes []string) (models.BatchResult, error) {
	if len(codes) == 0 {
		return models.BatchResult{}, &service.ValidationError{
			Kind:    service.ValidationEmptyBatch,
			Message: "codes must not be empty",
		}
	}
	if len(codes) > o.maxCodes {
		return models.BatchResult{}, &service.ValidationError{
			Kind:    service.ValidationTooManyItems,
			Message: fmt.Sprintf("batch query supports at most %d funds", o.maxCodes),
		}
	}
	for _, code := range codes {
		if !models.ValidFundCode(code) {
			return models.BatchResult{}, &service.ValidationError{
				Kind:    service.ValidationBadCode,
				Message: "all fund codes must be exactly 6 digits",
			}
		}
	}

	start := time.Now()
	logger.L().Info().Int("codes", len(codes)).Int("max_parallel", o.parallel).Msg("batch start")

	result := models.BatchResult{
		Successes: make([]models.FundResult, 0, len(codes)),
		Errors:    make(map[string]string),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, o.parallel)

	for _, code := range codes {
		c := code
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()

			fund, err := o.svc.GetFund(gctx, c)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				// Routed into the result instead of returned, so sibling
				// fetches keep running.
				result.Errors[c] = err.Error()
				return nil
			}
			result.Successes = append(result.Successes, fund)
			return nil
		})
	}

	// Workers never return errors; Wait is just the completion barrier.
	_ = g.Wait()

	logger.L().Info().
		Int("succeeded", len(result.Successes)).
		Int("failed", len(result.Errors)).
		Dur("elapsed", time.Since(start)).
		Msg("batch done")

	return result, nil
}
