// Package client provides the Client entity of the taxi system: a passenger with
// a name and a VIP flag. Like drivers, clients are never updated, and deleting a
// client removes the orders that reference it.
package client
