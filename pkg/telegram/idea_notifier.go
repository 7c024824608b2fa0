package telegram

import (
	"context"
	"fmt"

	"golang-stock-ideas/internal/entity"
)

// IdeaNotifier posts lifecycle notices for stock ideas to a chat.
type IdeaNotifier struct {
	sender Sender
}

// NewIdeaNotifier creates an IdeaNotifier over sender.
func NewIdeaNotifier(sender Sender) *IdeaNotifier {
	return &IdeaNotifier{sender: sender}
}

func (n *IdeaNotifier) NotifyPublished(_ context.Context, idea *entity.StockIdea) error {
	return n.send("published", FormatPublishedIdea(idea))
}

func (n *IdeaNotifier) NotifyAmended(_ context.Context, idea *entity.StockIdea, flags entity.ModifiedFlags) error {
	return n.send("amended", FormatAmendedIdea(idea, flags))
}

func (n *IdeaNotifier) NotifyArchived(_ context.Context, idea *entity.StockIdea) error {
	return n.send("archived", FormatArchivedIdea(idea))
}

func (n *IdeaNotifier) send(kind, text string) error {
	if err := n.sender.SendMessage(text); err != nil {
		return fmt.Errorf("failed to send %s notice: %w", kind, err)
	}
	return nil
}
