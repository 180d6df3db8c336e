// internal/service/content_generator.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/generative-ai-go/genai"

	"github.com/unclebandit/campaign-copy-backend/internal/config"
	appErrors "github.com/unclebandit/campaign-copy-backend/internal/errors"
	"github.com/unclebandit/campaign-copy-backend/internal/model"
	"github.com/unclebandit/campaign-copy-backend/internal/provider"
	"github.com/unclebandit/campaign-copy-backend/internal/validator"
)

const maxRecordedPayload = 2048

// ContentGenerator turns a niche into CampaignContent. It holds no per-call
// state and is safe for concurrent use.
type ContentGenerator struct {
	Provider  provider.ContentProvider
	Validator *validator.ContentValidator
	Recorder  EventRecorder

	configured           bool
	timeout              time.Duration
	fallbackDelay        time.Duration
	failureFallbackDelay time.Duration
	schema               *genai.Schema
}

// GenerationResult is the internal outcome of one call. Failure is the cause
// that routed to fallback, nil when the provider content was used.
type GenerationResult struct {
	Content  model.CampaignContent
	Source   string
	Template string
	Failure  error
	Duration time.Duration
}

func NewContentGenerator(providerCfg config.ProviderConfig, generatorCfg config.GeneratorConfig, p provider.ContentProvider, recorder EventRecorder) *ContentGenerator {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &ContentGenerator{
		Provider:             p,
		Validator:            validator.MustNewContentValidator(),
		Recorder:             recorder,
		configured:           p != nil && providerCfg.IsConfigured(),
		timeout:              providerCfg.Timeout,
		fallbackDelay:        generatorCfg.FallbackDelay,
		failureFallbackDelay: generatorCfg.FailureFallbackDelay,
		schema:               provider.CampaignContentSchema(),
	}
}

// Generate always returns usable content, from the provider or synthesized locally.
func (g *ContentGenerator) Generate(ctx context.Context, niche string) model.CampaignContent {
	return g.GenerateWithOutcome(ctx, niche).Content
}

func (g *ContentGenerator) GenerateWithOutcome(ctx context.Context, niche string) *GenerationResult {
	start := time.Now()
	result := &GenerationResult{}

	if !g.configured {
		result.Failure = appErrors.NewConfigurationAbsent()
		g.fallback(ctx, result, niche, g.fallbackDelay)
	} else if content, err := g.callProvider(ctx, niche); err != nil {
		result.Failure = err
		g.fallback(ctx, result, niche, g.failureFallbackDelay)
	} else {
		result.Content = *content
		result.Source = model.SourceProvider
	}

	result.Duration = time.Since(start)
	g.record(ctx, niche, result)
	return result
}

func (g *ContentGenerator) fallback(ctx context.Context, result *GenerationResult, niche string, delay time.Duration) {
	result.Content, result.Template = SynthesizeFallback(niche)
	result.Source = model.SourceFallback
	wait(ctx, delay)
}

// callProvider makes the single provider attempt. The wait is bounded by the
// configured timeout even when the provider ignores its context.
func (g *ContentGenerator) callProvider(ctx context.Context, niche string) (*model.CampaignContent, error) {
	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	type reply struct {
		text string
		err  error
	}
	replies := make(chan reply, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				replies <- reply{err: fmt.Errorf("provider panic: %v", r)}
			}
		}()
		text, err := g.Provider.Complete(callCtx, BuildPrompt(niche), g.schema)
		replies <- reply{text: text, err: err}
	}()

	select {
	case r := <-replies:
		if r.err != nil {
			return nil, classify(callCtx, r.err)
		}
		return g.Validator.Parse(r.text)
	case <-callCtx.Done():
		return nil, classify(callCtx, callCtx.Err())
	}
}

func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return appErrors.NewTimeoutExceeded(err)
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return appErrors.NewCallerCanceled(err)
	}
	return appErrors.NewTransportFailure(err)
}

func (g *ContentGenerator) record(ctx context.Context, niche string, result *GenerationResult) {
	event := model.NewGenerationEvent(niche)
	event.Source = result.Source
	event.Template = result.Template
	event.DurationMs = result.Duration.Milliseconds()

	if result.Failure != nil {
		event.FailureKind = string(appErrors.KindOf(result.Failure))
		event.Cause = result.Failure.Error()

		var ge *appErrors.GenerationError
		if errors.As(result.Failure, &ge) && ge.Payload != "" {
			event.RawPayload = truncate(ge.Payload, maxRecordedPayload)
		}
	}

	g.Recorder.Record(ctx, event)
}

func wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
