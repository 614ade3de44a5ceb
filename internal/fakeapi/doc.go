// Package fakeapi is an in-memory implementation of the CreatorPilot REST
// API for local development and integration tests. It keeps accounts,
// profiles and generation history in memory, signs HS256 session tokens and
// produces deterministic chapters and titles from the submitted transcript.
//
// The first account registered becomes the owner. FailNext makes the next
// API call fail with a chosen status and message.
package fakeapi
