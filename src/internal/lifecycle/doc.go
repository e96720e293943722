// Package lifecycle ends the host application.
//
// The host's quit routine is reached through the Terminator interface so that
// callers never exit the process directly. Three implementations are provided:
//
//   - ProcessTerminator exits the process with the requested code.
//   - SignalTerminator sends SIGTERM to the current process, letting signal
//     handlers run their shutdown path (unix only).
//   - SimulationStopper cancels a context instead, for interactive or editor
//     sessions where the process must keep running.
//
// # Example Usage
//
//	t, err := lifecycle.FromMode(cfg.App.Mode, cancel)
//	if err != nil {
//	    return err
//	}
//	return lifecycle.QuitApplication(logger, t, "Fatal asset error")
package lifecycle
