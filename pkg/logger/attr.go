package logger

import "log/slog"

// Machine records a machine name under the key "machine".
func Machine(name string) slog.Attr {
	return slog.String("machine", name)
}

// Stack records a stack name under the key "stack".
func Stack(name string) slog.Attr {
	return slog.String("stack", name)
}

// State records a state type under the key "state".
func State(st string) slog.Attr {
	return slog.String("state", st)
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}
