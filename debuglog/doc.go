// Package debuglog writes to the platform debug channel, the stream a
// native debugger shows alongside its own events. On Windows that is
// OutputDebugString; elsewhere the package is a no-op because the
// structured stderr log already reaches a Unix debugger.
package debuglog
