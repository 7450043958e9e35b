// Package slog provides log/slog decorators for the densum service
// interfaces. Each decorator logs one record per call with the call's
// duration and error.
package slog
