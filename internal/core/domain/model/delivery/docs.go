// Package delivery contains the Delivery aggregate.
//
// A Delivery is created by an admin once its order's payment has been
// verified, carries a snapshot of the shipping address, and moves through a
// forward-only shipment status machine. Shipment progress feeds back into the
// order's status through the status coordinator.
package delivery
