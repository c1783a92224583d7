// Package service implements business logic for the dealscope application.
//
// This package coordinates between the HTTP handlers and the evaluation
// engine, implementing validation, report retention, and event publishing.
//
// # Services
//
// EvaluationService runs the reconciliation and scoring pipeline over
// collector snapshots and keeps a bounded in-memory window of recent
// reports for the API to list and retrieve.
//
// # Event System
//
// The service publishes events via EventBus for real-time updates to
// connected clients via Server-Sent Events (SSE). Event types cover the
// evaluation lifecycle: start, conflict detection, conflict resolution,
// and completion.
//
// # Design Principles
//
// - The service owns retention and eventing; the engine stays pure
// - Event-driven for real-time updates
// - Context-aware for cancellation
package service
