package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"geoalert/internal/domain"
	"geoalert/pkg/e"
)

// ConversationAssembler renders threads as ordered message lists.
type ConversationAssembler struct {
	store ThreadReader
}

func NewConversationAssembler(store ThreadReader) *ConversationAssembler {
	return &ConversationAssembler{store: store}
}

// Assemble returns the reporter's message first, then responses and replies
// by CreatedAt. On equal timestamps a response sorts before a reply, then
// ids break the tie.
func (a *ConversationAssembler) Assemble(ctx context.Context, threadID string) ([]domain.Message, error) {
	th, err := a.store.GetThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	return AssembleThread(th), nil
}

type ordered struct {
	msg  domain.Message
	rank int // 0 response, 1 reply
}

func AssembleThread(th *domain.Thread) []domain.Message {
	rest := make([]ordered, 0, len(th.Responses)+len(th.Replies))
	for _, r := range th.Responses {
		rest = append(rest, ordered{rank: 0, msg: domain.Message{
			ID: r.ID, Role: domain.MessageRoleGovernment, Text: r.Text, AuthorID: r.AuthorID, CreatedAt: r.CreatedAt,
		}})
	}
	for _, r := range th.Replies {
		rest = append(rest, ordered{rank: 1, msg: domain.Message{
			ID: r.ID, Role: domain.MessageRoleCitizenReply, Text: r.Text, AuthorID: r.AuthorID, CreatedAt: r.CreatedAt,
		}})
	}
	sort.SliceStable(rest, func(i, j int) bool {
		a, b := rest[i], rest[j]
		if !a.msg.CreatedAt.Equal(b.msg.CreatedAt) {
			return a.msg.CreatedAt.Before(b.msg.CreatedAt)
		}
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		return a.msg.ID < b.msg.ID
	})

	out := make([]domain.Message, 0, len(rest)+1)
	out = append(out, domain.Message{
		ID:        th.Report.ID,
		Role:      domain.MessageRoleReporter,
		Text:      th.Report.Text,
		AuthorID:  th.Report.AuthorID,
		CreatedAt: th.Report.CreatedAt,
	})
	for _, o := range rest {
		out = append(out, o.msg)
	}
	return out
}

// ListConversations lists the author's answered threads, most recent
// response first.
func (a *ConversationAssembler) ListConversations(ctx context.Context, authorID string) ([]domain.Conversation, error) {
	if strings.TrimSpace(authorID) == "" {
		return nil, e.Validation("author_id", "required")
	}
	reports, err := a.store.ListReportsByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Conversation, 0, len(reports))
	for _, r := range reports {
		th, err := a.store.GetThread(ctx, r.ID)
		if err != nil {
			// deleted between list and load
			if errors.Is(err, e.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if !th.Answered() {
			continue
		}
		out = append(out, domain.Conversation{
			Report:         th.Report,
			ResponseCount:  len(th.Responses),
			ReplyCount:     len(th.Replies),
			LastActivityAt: th.LastActivity(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].LastActivityAt.Equal(out[j].LastActivityAt) {
			return out[i].LastActivityAt.After(out[j].LastActivityAt)
		}
		return out[i].Report.ID > out[j].Report.ID
	})
	return out, nil
}
