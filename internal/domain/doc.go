// Package domain contains the core lesson entities of Dual Class: the
// metaphor result returned by generation, its lesson steps, mapping pairs,
// visual callouts and quiz options, and the error mirror structures that
// enrich a result after a wrong answer. It also holds the invariants every
// successfully parsed result must satisfy, independent of any transport or
// model provider.
package domain
