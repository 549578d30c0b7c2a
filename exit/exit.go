package exit

import "os"

// CodeFailure is also reported when the interpreter is missing.
const CodeFailure = 1

func Exit(code int) {
	os.Exit(code)
}

func Fail() {
	Exit(CodeFailure)
}
