// Package tuid provides time-based unique identifiers.
//
// A Tuid is 128 bits: approximate nanoseconds since the unix epoch followed by a
// counter. Identifiers handed out by one Generator are strictly increasing.
//
// There is no package-level generator. Callers that issue ids own a Generator
// and pass it to where ids are needed:
//
//	gen := tuid.NewGenerator()
//	id := gen.Next()
package tuid
