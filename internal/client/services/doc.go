// Package services holds the client's application services: the generation
// workflow controller, the history list, the admin directory and the profile
// editor. Each service talks to the backend through a narrow interface
// satisfied by client.HTTPClient and keeps its view state behind a mutex.
package services
