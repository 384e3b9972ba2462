package visioservice

// Logger writes structured client logs.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
