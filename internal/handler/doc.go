// Package handler implements HTTP request handlers for the dealscope API.
//
// This package provides the HTTP layer for the REST API, handling snapshot
// submission, report retrieval and the SSE event stream.
//
// # Handlers
//
// EvaluationHandler accepts collector snapshots, runs the evaluation
// pipeline through the service layer and serves the retained reports.
//
// # API Design
//
// - POST /api/v1/evaluations submits a snapshot and returns its report
// - GET  /api/v1/evaluations lists recent report summaries
// - GET  /api/v1/evaluations/{id} returns one full report
// - GET  /api/v1/events streams evaluation events via SSE
// - GET  /healthz reports liveness
//
// Errors are returned as JSON with {error, details} structure. Malformed
// snapshot bundles are rejected with the offending collector named.
package handler
