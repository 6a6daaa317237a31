// Package main hosts the docimages CLI entrypoint and command graph.
//
// The Cobra-based command tree loads configuration once, opens a session to
// Audacity's mod-script-pipe, and runs either whole image sets or a single
// raw command. It also surfaces preflight checks and configuration
// scaffolding so problems with the pipes or sample recordings show up before
// a capture run starts.
package main
