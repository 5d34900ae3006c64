// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional YAML file. It provides
// type-safe access to the server, model and asset settings.
//
// Every key can be set through an environment variable named
// DUALCLASS_<SECTION>_<KEY>, for example DUALCLASS_SERVER_PORT. The Gemini
// API key is also read from GOOGLE_GEMINI_API_KEY.
package config
