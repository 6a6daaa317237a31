// Package session drives the command/response cycle with Audacity.
//
// A Session is the single owner of the pipe transport for one harness run.
// Setup opens the pipes once, guarded by a file lock so two harness
// processes never interleave commands on the same pipes, and applies the
// project window geometry. Execute sends one command and waits for its
// response, optionally bounded by the configured response timeout, and
// classifies the trailing "BatchCommand finished" status line.
package session
