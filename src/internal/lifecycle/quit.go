package lifecycle

import (
	"github.com/maksimkurb/engutil/src/internal/errors"
	"github.com/maksimkurb/engutil/src/internal/log"
	"github.com/maksimkurb/engutil/src/internal/utils"
)

// QuitApplication logs message as an error if it is not blank and then asks t
// to terminate the host with code 0. A nil logger uses the default logger.
func QuitApplication(logger *log.Logger, t Terminator, message string) error {
	if t == nil {
		return errors.NewNilObjectError("QuitApplication")
	}
	if logger == nil {
		logger = log.Default()
	}

	if !utils.IsBlankString(message) {
		logger.Errorf("%s", message)
	}

	return t.Terminate(0)
}
