// Package service contains the lesson use cases. LessonService decides
// between the demo fixtures and live generation, shapes the served lesson
// and its metadata, and falls back to the chef fixture when live
// generation fails.
//
// Error handling principles:
//  1. Service methods return sentinel errors for expected error conditions
//  2. Unexpected errors are wrapped in LessonServiceError
//  3. Callers use errors.Is/errors.As to check for specific error conditions
//  4. The API layer maps service errors to HTTP status codes
package service
