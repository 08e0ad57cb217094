// Package pipeline wires the chat detector, analyzer, synthesizer, and
// registry into the end-to-end flow conversational surfaces call.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"siteforge/internal/chat"
	"siteforge/internal/registry"
)

// ChatReply is the boundary record returned to chat surfaces. A false
// Success is not an error: it means the message did not read as a
// generation request.
type ChatReply struct {
	Success bool   `json:"success"`
	TypeKey string `json:"type_key,omitempty"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

// Chat orchestrates one-message section generation against a registry.
type Chat struct {
	reg *registry.Registry
	log *zap.Logger
}

// NewChat builds the chat pipeline. A nil logger logs nowhere.
func NewChat(reg *registry.Registry, log *zap.Logger) *Chat {
	if log == nil {
		log = zap.NewNop()
	}
	return &Chat{reg: reg, log: log}
}

// Handle detects a generation request, registers the synthesized section,
// and confirms it resolves. All failure modes degrade to a polite reply.
func (c *Chat) Handle(ctx context.Context, message string) ChatReply {
	if !chat.IsGenerationRequest(message) {
		return ChatReply{
			Message: "I couldn't find a section request in that. Try something like \"I need a team section\".",
		}
	}

	seed := chat.ExtractSeedRequest(message)
	typeKey := c.reg.RegisterSynthesized(message, seed.Name)

	impl, err := c.reg.Resolve(ctx, typeKey)
	if err != nil || impl == nil {
		c.log.Warn("registered section did not resolve",
			zap.String("type_key", typeKey), zap.Error(err))
		return ChatReply{
			Message: "Something went wrong building that section. Nothing was added.",
		}
	}

	c.log.Info("chat generation request fulfilled",
		zap.String("type_key", typeKey), zap.String("component", impl.Name))
	return ChatReply{
		Success: true,
		TypeKey: typeKey,
		Name:    impl.Name,
		Message: fmt.Sprintf("Added a %s section. It's available as %q.", impl.Name, typeKey),
	}
}
