// Package api handles incoming HTTP requests, request validation and
// response formatting for the lesson endpoints. It adapts HTTP concerns to
// the lesson service and maps service errors to status codes and messages
// that are safe to show clients.
package api
