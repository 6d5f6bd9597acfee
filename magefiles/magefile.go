//go:build mage

// Package main provides build targets for the shipyard project using Mage.
//
// Usage:
//
//	mage build        Compile shipyard binary to bin/
//	mage install      Install shipyard to GOPATH/bin
//	mage clean        Remove build artifacts
//	mage demo         Build and run the reference voyage
//	mage test:all     Run all tests
//	mage test:cover   Run tests with a coverage profile in bin/
//	mage lint         Run golangci-lint
//	mage vet          Run go vet
//	mage stats        Print Go LOC for production and test code
package main
