package consoles

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

type stdoutConsole struct {
	out      io.Writer
	now      func() time.Time
	prefixes []string
}

func NewStdOutConsole() Console {
	return NewWriterConsole(os.Stdout)
}

func NewWriterConsole(out io.Writer) Console {
	return &stdoutConsole{
		out: out,
		now: time.Now,
	}
}

func (o *stdoutConsole) Printf(format string, a ...any) {
	_, _ = io.WriteString(o.out, o.Prepare(format, a...))
}

func (o *stdoutConsole) Prepare(format string, a ...any) string {
	builder := strings.Builder{}
	builder.WriteString("[")
	builder.WriteString(o.now().Format("15:04:05"))
	builder.WriteString("] ")
	for _, prefix := range o.prefixes {
		builder.WriteString(prefix)
	}
	builder.WriteString(fmt.Sprintf(format, a...))
	return builder.String()
}

func (o *stdoutConsole) PushPrefix(format string, a ...any) {
	o.prefixes = append(o.prefixes, fmt.Sprintf(format, a...))
}

func (o *stdoutConsole) PopPrefix() {
	if len(o.prefixes) == 0 {
		return
	}

	o.prefixes = o.prefixes[:len(o.prefixes)-1]
}
