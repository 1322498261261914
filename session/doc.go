// Package session orchestrates one interactive plotting session: it owns the
// current function selection and the last committed ParameterSet, and drives
// the plot pipeline in response to the two UI events a shell can raise.
//
// States:
//
//	Idle      — no function chosen (start, or the blank entry selected)
//	Selected  — function chosen, parameters at their defaults
//	Committed — the last parameter submission validated
//	Erroring  — transient: a submission failed and is being rolled back
//	            into whichever of the states above it came from
//
// Rollback contract: a failed ApplyParameters never changes the committed
// ParameterSet, and the shell is always told to re-display the committed
// values (RestoreFields) after every commit and every rollback.
//
// A Session serializes its operations with a mutex, so shells dispatching
// events from several goroutines still see one mutation at a time. Shell
// callbacks run while that lock is held and must not call back into the
// Session.
package session
