// Package debug provides the debug log for rhymer.
//
// When enabled via the --debug flag, it records word-service requests,
// their durations and failures. Failed requests are reported only here;
// the UI does not surface them.
package debug
