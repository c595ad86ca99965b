package consoles

type Console interface {
	Printf(format string, a ...any)

	PushPrefix(format string, a ...any)
	PopPrefix()

	// Prepare returns the text that Printf would output, without writing it.
	Prepare(format string, a ...any) string
}
