// Package cli provides the interactive CreatorPilot command-line client.
//
// It wires configuration, local storage, the backend API client, the session
// manager and the generation, history, admin and profile services behind a
// line-oriented REPL. Each screen of the web client is a command group and a
// command is accepted only while its view is visible to the current session:
//
//   - login, register                         (signed out)
//   - generate, format, copy, export, recent  (dashboard)
//   - titles                                  (titles)
//   - history                                 (history)
//   - profile                                 (profile)
//   - admin                                   (admins and owners)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
