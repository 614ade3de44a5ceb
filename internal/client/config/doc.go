// Package config loads runtime configuration for the CreatorPilot CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after an optional .env file in the working
//     directory has been loaded with godotenv.
//  3. Optional config file selected via -c or -config. The extension picks
//     the decoder: .yaml and .yml use YAML, anything else JSON.
//  4. Command-line flags, which override everything above.
//
// Environment
//
//	CREATORPILOT_API_URL        API base URL
//	CREATORPILOT_TIMEOUT        request timeout ("30s")
//	CREATORPILOT_DB             SQLite database path
//	CREATORPILOT_PAGE_SIZE      history page size
//	CREATORPILOT_EXPORT_DIR     export directory
//	CREATORPILOT_LOG_LEVEL      debug, info, warn or error
//	CREATORPILOT_S3_BUCKET, CREATORPILOT_S3_REGION, CREATORPILOT_S3_ENDPOINT,
//	CREATORPILOT_S3_ACCESS_KEY, CREATORPILOT_S3_SECRET_KEY
//
// Flags
//
//	-a string   API base URL
//	-t int      request timeout (seconds)
//	-d string   database path
//	-p int      history page size
//	-o string   export directory
//	-l string   log level
//
// # File schema
//
// Durations accept strings like "30s" or integer nanoseconds:
//
//	api_url: http://127.0.0.1:8080
//	request_timeout: 30s
//	database_path: creatorpilot.db
//	history_page_size: 5
//	s3:
//	  bucket: exports
//	  region: us-east-1
//	  endpoint: http://127.0.0.1:9000
package config
