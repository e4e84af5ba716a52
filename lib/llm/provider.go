// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

// Package llm provides the model provider client used by the quartz
// generation commands (commit messages, PR bodies, reviews,
// changelogs). The wire codec speaks the OpenAI chat completions
// format, which covers OpenAI itself and the compatible servers
// (OpenRouter, vLLM, Ollama, llama.cpp, ...).
package llm

import "context"

// Provider is the interface for model API backends. Implementations
// translate between the common types in this package and the vendor's
// wire format.
type Provider interface {
	// Complete sends a request and blocks until the full response is
	// available.
	Complete(ctx context.Context, request Request) (*Response, error)
}

// Request is a provider-independent completion request.
type Request struct {
	// Model names the model to use.
	Model string

	// System is the system prompt, sent as the first message when
	// non-empty.
	System string

	// Prompt is the user message.
	Prompt string

	// MaxTokens caps the response length. Zero lets the provider
	// default apply.
	MaxTokens int

	// Temperature, when non-nil, overrides the provider default.
	Temperature *float64
}

// Response is the provider-independent completion result.
type Response struct {
	// Text is the assistant's reply.
	Text string

	// Model echoes the model that produced the reply.
	Model string

	// InputTokens and OutputTokens report usage when the provider
	// supplies it.
	InputTokens  int
	OutputTokens int
}
