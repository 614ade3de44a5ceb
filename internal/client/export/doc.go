// Package export turns a generation result into something the user can take
// away: clipboard text, a local file (optionally rendered to HTML) or an
// object in an S3-compatible bucket.
package export
