package shader

import (
	"fmt"
	"strings"
)

// CompileError reports a failed stage compilation. Log carries the driver's
// diagnostic output for the stage named by Stage.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Stage, trimLog(e.Log))
}

// LinkError reports a failed program link. Log carries the program-level
// diagnostic output.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link shader program: %s", trimLog(e.Log))
}

// trimLog strips the trailing NUL and newline noise drivers append to
// info logs.
func trimLog(log string) string {
	return strings.TrimRight(log, "\x00\r\n ")
}
