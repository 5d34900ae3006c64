// Package gemini implements generation.Generator against Google's Gemini
// API using the google.golang.org/genai SDK.
//
// The Client issues two kinds of calls: text generation for lessons and
// error mirrors, and image generation (optionally with a reference image
// for edits). Text responses are reduced to their JSON payload; image
// responses are scanned for the first inline image part, which is written
// through an ImageSaver and returned as a public path.
//
// Every call is attempted once. Error mirror images are requested one at a
// time, and a failed image degrades to a placeholder path instead of
// failing the whole mirror.
package gemini
