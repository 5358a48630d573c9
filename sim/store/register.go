// register.go wires the store's value types into the message codec registry.
// The init() runs when any package imports sim/store, so bags carrying
// Customers encode and decode without further setup.
package store

import "github.com/storesim/storesim/sim/message"

func init() {
	message.RegisterValue[Customer]("Customer")
}
