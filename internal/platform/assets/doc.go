// Package assets manages the flat-file side of the public directory:
// generated images written by the model client and the demo fixtures read
// by the lesson service.
package assets
