// Package pipe implements the client side of Audacity's mod-script-pipe
// transport.
//
// Two named pipes connect the harness to a running Audacity: commands go
// out on the "to" endpoint as one terminated line, and responses come back
// on the "from" endpoint as a run of lines closed by an empty line. The
// endpoint names and the command terminator depend on the host platform;
// EndpointsFor captures that choice as a pure function so it can be tested
// on any host.
//
// Transport owns the two open handles. Send writes and flushes one command
// per call. Receive gathers the next response and honours context
// cancellation; a response abandoned by a cancelled Receive is discarded by
// the following call so commands and responses stay paired.
package pipe
