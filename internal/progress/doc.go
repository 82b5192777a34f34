// Package progress draws a single-line terminal progress bar while worker
// goroutines report their work.
//
// A Progress handle is created explicitly and passed to whatever needs it;
// there is no package-level bar. Workers call AddTask, CompleteTask,
// Increment, SetDone and AddTotal from any goroutine. Those calls only take
// the state mutex for the mutation itself and never touch the terminal.
//
// One driver goroutine owns the output. Every tick (100ms by default) it
// takes a Snapshot, renders a line sized to the terminal and writes it as
// "\r" + clear-line + line, skipping frames identical to the last one.
//
//	[00:00:03]  [##########----------]  2/3  66.67%  eta 00:00:01  fetch.tar
//
// # Lifecycle
//
// A bar is Idle while its total is zero, Running while work remains and
// Done as soon as the completed count reaches the total. Done is terminal:
// further mutations return ErrFinished. When the bar reaches Done, or when
// Finish is called, the driver writes exactly one final frame, ends the
// line, shows the cursor again and exits.
//
// # Signals
//
// Resized and Interrupt are the only inputs from the outside world.
// WatchSignals connects them to SIGWINCH, SIGINT and SIGTERM and re-raises
// termination signals once the terminal has been restored.
package progress
