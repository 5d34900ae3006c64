// Package lesson holds the view logic a client runs over a served lesson:
// quiz scoring, free-text answer matching, badge and emoji lookup and the
// per-client session reducer.
//
// Everything here is pure. Session state lives with the client and is never
// persisted by the server.
package lesson
