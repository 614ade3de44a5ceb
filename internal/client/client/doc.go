// Package client contains client-side building blocks for CreatorPilot.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     every backend endpoint: Login/Register, GenerateChapters/GenerateTitles,
//     profile, history and the admin user directory.
//  2. A concrete HTTP/JSON implementation (see HTTPClient). A RoundTripper
//     injects the bearer token from a TokenSource and a request id on every
//     call, the way an interceptor would.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Failures map onto the kinds in package common and can be matched with
// errors.Is: common.ErrAuthentication for rejected login/register,
// common.ErrRequest for other non-2xx answers, common.ErrNetwork for
// transport failures and malformed bodies. Server-provided messages travel in
// *common.ServerError.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation; a default per-request timeout is
// applied by the underlying http.Client.
package client
