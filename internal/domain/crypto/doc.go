// Package crypto defines the core interfaces, constants and error types for symmetric
// encryption with AES, shared by the cipher implementation and the CLI and REST collaborators.
package crypto
