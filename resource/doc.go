// Package resource bounds the work a query engine admits: how many queries run
// at once, how many start per second, and how many rows a single batch may
// carry.
//
// A nil *Controller admits everything.
package resource
