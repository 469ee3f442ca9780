//go:build tools

package tools

// This file tracks CLI tools used during development.
// It is not compiled into the binary.
//
//   - github.com/matryer/moq: service and handler mocks (go generate ./...)
//   - github.com/pressly/goose/v3/cmd/goose: ad-hoc migration authoring;
//     cmd/migrate applies the embedded set
