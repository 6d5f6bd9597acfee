// Package shipyard holds build metadata shared by the CLI and tooling.
package shipyard

// Version is the shipyard release version.
const Version = "0.1.0"
