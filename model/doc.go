// Package model defines the provider-agnostic abstractions and concrete
// helpers for interacting with language models inside ContentStudio.
//
// Core goals:
//   - Normalize tool / function call representation (ToolDefinition)
//   - Keep request/response shapes minimal and transport independent
//   - Facilitate lightweight mocking for tests (MockModel)
//
// Providers (OpenAI, Anthropic) implement the Model interface from this
// package so the agent remains decoupled from vendor SDKs.
package model
