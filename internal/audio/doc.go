// Package audio turns captured lecture recordings into inline payloads for
// the model transport.
package audio
