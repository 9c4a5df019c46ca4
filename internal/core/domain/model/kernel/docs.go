// Package kernel provides core domain primitives shared by the driver, client
// and order models of the taxi system.
//
// The package includes:
//   - ID: a database-generated positive integer identifier
//   - ValidateText: bounds checking for the free-text attributes (names, cars, addresses)
package kernel
