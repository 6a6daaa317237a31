// Package preflight provides readiness checks for the pipes, sample
// recordings, and directories a docimages run depends on.
//
// The CLI "docimages check" command renders RunAll as a status list. The
// checks only observe; nothing is created or opened.
package preflight
