// Package driver provides the Driver entity of the taxi system.
//
// A driver has a database-generated identifier, a name and a car description.
// Drivers are created and deleted but never updated; deleting a driver removes
// every order that references it.
package driver
