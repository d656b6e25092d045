// Package automation holds the host's automation rules: intent detection,
// canned auto-responses, dynamic pricing, and guest message templates.
//
// Every function here is pure and synchronous. Nothing in this package
// performs I/O or keeps state between calls, so the same inputs always
// produce the same output.
package automation
