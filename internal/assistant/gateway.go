// Package assistant answers staff questions about one patient record using
// a chat-completion provider, falling back to the essentials summary
// whenever the provider cannot produce an answer.
package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"hospital-dashboard/internal/llm"

	"github.com/sirupsen/logrus"
)

// ErrMessageRequired is the only error Answer returns.
var ErrMessageRequired = errors.New("message is required")

const (
	defaultMaxTokens   = 1024
	defaultTimeout     = 30 * time.Second
	defaultLanguage    = "français"
	defaultTemperature = 0.2
)

// Summaries renders the patient record. Implemented by summary.Builder.
type Summaries interface {
	BuildFull(ctx context.Context, patientID int64) (string, error)
	BuildEssential(ctx context.Context, patientID int64) (string, error)
}

type Options struct {
	MaxTokens int
	Timeout   time.Duration
	Language  string
}

type Gateway struct {
	summaries Summaries
	client    llm.ChatClient
	monitor   Monitor
	log       *logrus.Logger
	opts      Options
}

// NewGateway wires the gateway. A nil client means no provider credential
// is configured and every turn answers with the essentials summary.
func NewGateway(summaries Summaries, client llm.ChatClient, monitor Monitor, log *logrus.Logger, opts Options) *Gateway {
	if monitor == nil {
		monitor = NopMonitor()
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = defaultMaxTokens
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Language == "" {
		opts.Language = defaultLanguage
	}
	return &Gateway{
		summaries: summaries,
		client:    client,
		monitor:   monitor,
		log:       log,
		opts:      opts,
	}
}

// Answer runs one chat turn. Apart from ErrMessageRequired it never fails:
// every provider or store problem resolves to a reply string.
func (g *Gateway) Answer(ctx context.Context, patientID int64, message string) (*Result, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrMessageRequired
	}

	result := g.answer(ctx, patientID, message)
	g.monitor.Record(ctx, patientID, result)

	entry := g.log.WithFields(logrus.Fields{
		"patient_id": patientID,
		"state":      result.State,
		"reason":     result.Reason,
	})
	switch result.Reason {
	case ReasonNone, ReasonNoCredential:
		entry.Info("Assistant turn completed")
	default:
		entry.Warn("Assistant fell back to essentials")
	}

	return result, nil
}

func (g *Gateway) answer(ctx context.Context, patientID int64, message string) *Result {
	if g.client == nil {
		return g.essentials(ctx, patientID, ReasonNoCredential)
	}
	if g.monitor.CoolingDown(ctx) {
		return g.essentials(ctx, patientID, ReasonCooldown)
	}

	record, err := g.summaries.BuildFull(ctx, patientID)
	if err != nil {
		g.log.Warnf("Failed to build patient summary: %+v", err)
		return g.essentials(ctx, patientID, ReasonRecordUnavailable)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()

	reply, err := g.client.Chat(callCtx, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt(g.opts.Language, record)},
			{Role: "user", Content: message},
		},
		MaxTokens:   g.opts.MaxTokens,
		Temperature: defaultTemperature,
	})
	if err != nil {
		if llm.IsQuotaExceeded(err) {
			g.log.Warnf("Assistant provider quota exceeded: %+v", err)
			g.monitor.StartCooldown(ctx)
			return g.essentials(ctx, patientID, ReasonQuotaExceeded)
		}
		g.log.Warnf("Failed to call assistant provider: %+v", err)
		return g.essentials(ctx, patientID, ReasonServiceError)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return g.essentials(ctx, patientID, ReasonEmptyReply)
	}
	return &Result{Reply: reply, State: StateReply, Reason: ReasonNone}
}

func (g *Gateway) essentials(ctx context.Context, patientID int64, reason Reason) *Result {
	text, err := g.summaries.BuildEssential(ctx, patientID)
	if err != nil {
		g.log.Warnf("Failed to build essentials summary: %+v", err)
		return &Result{Reply: UnavailableText, State: StateEssentials, Reason: ReasonRecordUnavailable}
	}
	return &Result{Reply: text, State: StateEssentials, Reason: reason}
}
