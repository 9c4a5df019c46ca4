// Package order provides the Order entity of the taxi system together with the
// rules that govern how an existing order may be updated.
//
// The package includes:
//   - Order: an order referencing a client and a driver, with pickup and
//     drop-off addresses, a creation time and a status
//   - Status: the four order states (not_accepted, in_progress, done, cancelled)
//   - EvaluateTransition: the decision procedure for a full-replacement update
//
// Update rules, first match wins:
//   - done and cancelled orders are final and cannot be modified
//   - an in_progress order cannot go back to not_accepted
//   - an in_progress order cannot change client, driver and creation time all at once
//   - a not_accepted order cannot jump straight to done
//
// An accepted update replaces all six mutable fields with the requested values.
package order
