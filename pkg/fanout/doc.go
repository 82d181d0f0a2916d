// Package fanout runs one function call per input item concurrently and
// collects the results in input order.
//
// It backs the gateway's batch operations (getMany, createMany, updateMany,
// deleteMany): every item gets its own goroutine, the caller blocks until
// all of them finish (join semantics), and the returned slice matches the
// input order regardless of completion order. When one or more calls fail,
// the error of the first failed item in input order is returned and the
// whole batch is considered failed — there is no partial-success reporting
// and no rollback of calls that already completed.
package fanout
