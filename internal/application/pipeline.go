package application

import (
	"context"
	"fmt"

	"github.com/luoyen/weibot/internal/domain"
	"github.com/luoyen/weibot/internal/ports"
)

// Pipeline turns a detected post into a submitted reply: fetch the full
// text, generate a comment, submit it, classify the result.
type Pipeline struct {
	client    ports.FeedClient
	generator ports.ReplyGenerator
	audit     ports.AuditLogger
}

func NewPipeline(client ports.FeedClient, generator ports.ReplyGenerator, audit ports.AuditLogger) *Pipeline {
	return &Pipeline{
		client:    client,
		generator: generator,
		audit:     audit,
	}
}

// Process replies to one post and reports how submission went. Every
// failure mode is folded into the outcome: the post is already marked
// processed by the poller, and delivery is not retried. A failed
// generation short-circuits before anything is submitted.
func (p *Pipeline) Process(ctx context.Context, id domain.AccountID, nickname string, mid int64) domain.ReplyOutcome {
	text, err := p.client.PostText(ctx, mid)
	if err != nil {
		return p.failure(id, mid, fmt.Sprintf("fetch post text: %v", err))
	}

	reply, err := p.generator.Generate(ctx, text)
	if err != nil {
		return p.failure(id, mid, fmt.Sprintf("generate reply: %v", err))
	}

	outcome, err := p.client.CreateComment(ctx, mid, reply)
	if err != nil {
		return p.failure(id, mid, fmt.Sprintf("submit reply: %v", err))
	}

	if outcome.Success {
		p.audit.Log(ports.AuditInfo, fmt.Sprintf("account %s (%s): replied to post %d", id, nickname, mid))
		return outcome
	}

	if outcome.Message == "" {
		outcome.Message = "unknown"
	}
	p.audit.Log(ports.AuditWarning, fmt.Sprintf("account %s (%s): reply to post %d rejected: %s", id, nickname, mid, outcome.Message))
	return outcome
}

func (p *Pipeline) failure(id domain.AccountID, mid int64, message string) domain.ReplyOutcome {
	p.audit.Log(ports.AuditError, fmt.Sprintf("account %s: post %d: %s", id, mid, message))
	return domain.ReplyOutcome{Success: false, Message: message}
}
