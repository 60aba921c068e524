// Package storage declares persistence contracts for web-owned data.
//
// The web service only stores an operator-facing log of contact
// submissions; form state itself lives in memory per visitor.
package storage
