// Package generation defines the boundary between lesson orchestration and
// the generative model. It holds the Generator interface, the error
// taxonomy every model backend maps into, and the two-stage parser that
// pulls JSON out of model text.
package generation
