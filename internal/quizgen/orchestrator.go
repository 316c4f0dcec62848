package quizgen

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/similarity"
	"github.com/abhisek/quizforge/internal/store"
)

// Generator drives question generation against an injected LLM provider:
// bounded concurrency across slots, bounded retries with backoff within a
// slot, similarity-based rejection of near-duplicates, and deterministic
// fallbacks on exhaustion. A batch of N requests always yields exactly N
// questions.
type Generator struct {
	provider llm.Provider
	cfg      Config
	events   store.EventRepo // optional; nil disables event recording

	// The repairer's RNG is not safe for concurrent use.
	repairMu sync.Mutex
	repair   *Repairer
}

// New creates a Generator. events may be nil.
func New(provider llm.Provider, cfg Config, events store.EventRepo) *Generator {
	return &Generator{
		provider: provider,
		cfg:      cfg,
		events:   events,
		repair:   NewRepairer(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
}

// SetRepairer replaces the repairer, letting tests pin the shuffle RNG.
func (g *Generator) SetRepairer(r *Repairer) {
	g.repair = r
}

// GenerateQuestions produces exactly count questions for the request.
// Slots run concurrently up to the configured limit; each slot that
// exhausts its retries is filled with a deterministic fallback, so the
// result never has fewer than count entries. Output preserves slot order.
func (g *Generator) GenerateQuestions(ctx context.Context, req GenerationRequest, count int) []Question {
	ctx = llm.WithPurpose(ctx, "question-gen")

	results := make([]Question, count)
	novelty := newNoveltySet(req.PriorQuestions)

	limit := g.cfg.MaxConcurrent
	if limit < 1 {
		limit = 1
	}
	sem := make(chan struct{}, limit)

	var wg sync.WaitGroup
	for slot := 0; slot < count; slot++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[slot] = *g.generateOne(ctx, req, slot, novelty)
		}(slot)
	}
	wg.Wait()

	return results
}

// GenerateMixed produces count questions, drawing each one's type from
// the grade-weighted table with recent-type damping. Slots run
// sequentially so every draw sees the types and texts already produced.
// The RNG drives the draws and is injectable for deterministic tests.
func (g *Generator) GenerateMixed(ctx context.Context, req GenerationRequest, count int, rng *rand.Rand) []Question {
	out := make([]Question, 0, count)
	var recent []QuestionType
	prior := append([]string(nil), req.PriorQuestions...)

	for i := 0; i < count; i++ {
		r := req
		r.Type = PickType(req.GradeLevel, recent, rng)
		r.PriorQuestions = prior
		r.Variation = req.Variation + i

		q := g.GenerateQuestions(ctx, r, 1)[0]
		out = append(out, q)
		recent = append(recent, r.Type)
		prior = append(prior, q.Text)
	}
	return out
}

// generateOne runs the per-question state machine: attempt, retry with
// backoff, fall back on exhaustion. Never returns nil.
func (g *Generator) generateOne(ctx context.Context, req GenerationRequest, slot int, novelty *noveltySet) *Question {
	start := time.Now()
	var notes []string

	for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			break
		}
		if attempt > 0 && !g.waitBackoff(ctx, attempt) {
			break
		}

		q, reason := g.attempt(ctx, req, slot, attempt, novelty)
		if q != nil {
			notes = append(notes, reason)
			g.recordOutcome(ctx, req, "accepted", attempt+1, start, notes)
			return q
		}
		notes = append(notes, fmt.Sprintf("attempt %d: %s", attempt+1, reason))
	}

	g.recordOutcome(ctx, req, "fallback", g.cfg.MaxAttempts, start, notes)
	return FallbackQuestion(req.Type, req.Difficulty)
}

// attempt performs one generate → parse → repair → novelty-check cycle.
// On success the accepted question is returned and its text is published
// to the novelty set; otherwise the rejection reason is returned.
func (g *Generator) attempt(ctx context.Context, req GenerationRequest, slot, attempt int, novelty *noveltySet) (*Question, string) {
	variation := req.Variation + slot + attempt
	temperature := g.cfg.BaseTemperature + float64(attempt)*g.cfg.TemperatureStep
	if temperature > 1.0 {
		temperature = 1.0
	}

	llmReq := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req, variation, g.cfg.MaxPriorQuestions)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: temperature,
	}

	attemptCtx, cancel := context.WithTimeout(ctx, g.cfg.AttemptTimeout)
	defer cancel()

	resp, err := g.generate(attemptCtx, llmReq)
	if err != nil {
		return nil, fmt.Sprintf("generator error: %v", err)
	}

	q, err := ParseResponse(string(resp.Content), req.Type, req.Difficulty)
	if err != nil {
		return nil, fmt.Sprintf("parse failure: %v", err)
	}

	g.repairMu.Lock()
	q, repairNotes := g.repair.Repair(q)
	g.repairMu.Unlock()
	for _, n := range repairNotes {
		fmt.Fprintf(os.Stderr, "warning: %s\n", n)
	}

	if score := similarity.MaxAgainst(q.Text, novelty.snapshot()); score > similarity.DuplicateThreshold {
		return nil, fmt.Sprintf("too similar to prior question (score %.2f)", score)
	}

	novelty.add(q.Text)
	if len(repairNotes) > 0 {
		return q, "repaired: " + strings.Join(repairNotes, "; ")
	}
	return q, "clean"
}

// generate calls the provider in a goroutine and enforces the attempt
// deadline on this side of the call. A provider that ignores
// cancellation keeps its goroutine, but the slot moves on and the late
// result is discarded.
func (g *Generator) generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	type result struct {
		resp *llm.Response
		err  error
	}

	// Buffered so a late-finishing call can always deliver and exit.
	ch := make(chan result, 1)
	go func() {
		resp, err := g.provider.Generate(ctx, req)
		ch <- result{resp, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		return r.resp, r.err
	}
}

// waitBackoff sleeps the linearly growing, capped inter-retry delay.
// Returns false if the context was canceled while waiting.
func (g *Generator) waitBackoff(ctx context.Context, attempt int) bool {
	wait := time.Duration(attempt) * g.cfg.InitialBackoff
	if wait > g.cfg.MaxBackoff {
		wait = g.cfg.MaxBackoff
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(wait):
		return true
	}
}

// recordOutcome appends a generation-outcome event. Best effort: a
// failure to record never blocks question delivery.
func (g *Generator) recordOutcome(ctx context.Context, req GenerationRequest, outcome string, attempts int, start time.Time, notes []string) {
	if g.events == nil {
		return
	}
	data := store.GenerationEventData{
		Subject:    req.Subject,
		Topic:      req.Topic,
		Type:       string(req.Type),
		Difficulty: string(req.Difficulty),
		Outcome:    outcome,
		Attempts:   attempts,
		LatencyMs:  time.Since(start).Milliseconds(),
		Notes:      strings.Join(notes, " | "),
	}
	if err := g.events.AppendGeneration(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record generation event: %v\n", err)
	}
}
