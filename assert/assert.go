package assert

import (
	"fmt"

	"github.com/bloeys/learngl/logging"
)

// T panics with the formatted message if check is false.
// The message is also written to logging.ErrLog so it shows up even if the panic is recovered.
func T(check bool, msg string, args ...any) {

	if check {
		return
	}

	formatted := fmt.Sprintf(msg, args...)
	logging.ErrLog.Output(2, "Assert failed: "+formatted)
	panic("Assert failed: " + formatted)
}
