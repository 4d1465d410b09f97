// Package main provides build targets for the cataloger project using Mage.
//
// Usage:
//
//	mage build       Compile the cataloger binary to bin/
//	mage test:all    Run all tests
//	mage test:unit   Run tests without the race detector or cache
//	mage test:cover  Run all tests and write coverage.out
//	mage lint        Run golangci-lint
//	mage vet         Run go vet
//	mage clean       Remove build artifacts
//	mage install     Install cataloger to GOPATH/bin
package main

// Default runs when mage is invoked without a target.
var Default = Build
