package handoff

import (
	"aistudio-academy/internal/metrics"
	"aistudio-academy/internal/models"
	"context"
	"encoding/json"
	"fmt"
)

const keyPrefix = "handoff:"

// Slot names. The two channels never share a key.
const (
	SlotPlaygroundImport = "playground_import"
	SlotShowcaseDraft    = "showcase_draft"
)

// Channel is a typed single-slot mailbox scoped per browser session.
type Channel[T any] struct {
	name    string
	slot    string
	mailbox Mailbox
}

func NewChannel[T any](name, slot string, mailbox Mailbox) *Channel[T] {
	return &Channel[T]{name: name, slot: slot, mailbox: mailbox}
}

// Name is the logical channel name used in logs and metrics.
func (c *Channel[T]) Name() string { return c.name }

func (c *Channel[T]) key(session string) string {
	return keyPrefix + session + ":" + c.slot
}

// Write replaces any unread record for the session.
func (c *Channel[T]) Write(ctx context.Context, session string, record T) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("handoff %s: encode: %w", c.name, err)
	}
	if err := c.mailbox.Put(ctx, c.key(session), payload); err != nil {
		return fmt.Errorf("handoff %s: write: %w", c.name, err)
	}
	metrics.HandoffOperations.WithLabelValues(c.name, "write", "true").Inc()
	return nil
}

// ReadAndClear returns the pending record, if any, and removes it. Once cleared
// it keeps returning ok=false until the next Write.
func (c *Channel[T]) ReadAndClear(ctx context.Context, session string) (T, bool, error) {
	var record T

	payload, ok, err := c.mailbox.Take(ctx, c.key(session))
	if err != nil {
		return record, false, fmt.Errorf("handoff %s: read: %w", c.name, err)
	}
	metrics.HandoffOperations.WithLabelValues(c.name, "read", fmt.Sprint(ok)).Inc()
	if !ok {
		return record, false, nil
	}

	if err := json.Unmarshal(payload, &record); err != nil {
		return record, false, fmt.Errorf("handoff %s: decode: %w", c.name, err)
	}
	return record, true, nil
}

// Channels bundles the two handoff channels of the academy.
type Channels struct {
	PlaygroundImport *Channel[models.PlaygroundImport]
	ShowcaseDraft    *Channel[models.ShowcaseDraft]
}

func NewChannels(mailbox Mailbox) *Channels {
	return &Channels{
		PlaygroundImport: NewChannel[models.PlaygroundImport]("import-to-playground", SlotPlaygroundImport, mailbox),
		ShowcaseDraft:    NewChannel[models.ShowcaseDraft]("draft-to-showcase", SlotShowcaseDraft, mailbox),
	}
}
