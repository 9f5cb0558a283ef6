// Package sam talks to the external Segment Anything inference service.
//
// The service is a black box to the rest of the repository: it receives a
// processing-resolution image plus a bundle of generator parameters and
// returns a finite list of mask candidates. Failures are reported as
// ErrModelInvocation and are fatal to the request; any retry policy belongs
// to the caller.
package sam
