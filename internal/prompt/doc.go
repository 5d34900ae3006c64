// Package prompt renders the instruction strings sent to the generative
// model. Every function is pure: the output depends only on the arguments.
//
// Concept, persona and quiz text are embedded verbatim with no escaping.
// Callers must treat them as untrusted input; prompt injection is not
// mitigated here.
package prompt
