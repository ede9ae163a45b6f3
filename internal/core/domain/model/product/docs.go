// Package product contains the buyer-side inventory aggregate.
//
// Products are the local counterpart of supplier catalog items. Delivery
// confirmation either links an order line to an existing product and
// increments its stock, or creates a brand-new product from the catalog line.
package product
