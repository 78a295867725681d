// Package store provides the generic observable in-memory collection that
// every feature store in zengrow specializes: tasks, habits, focus sessions,
// and activated day schedules.
//
// A Store holds entities of one type, assigns server-side ids and creation
// timestamps on Add, replaces its backing slice on every mutation rather than
// editing it in place, and synchronously notifies registered subscribers after
// each committed mutation. Update and Delete on an unknown id are silent
// no-ops; callers that care about existence use Get first.
package store
