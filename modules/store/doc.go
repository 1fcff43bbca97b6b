// Package store implements the eBook storefront: a landing page, a catalog
// listing, a purchase form per product, and email fulfillment.
//
// A purchase has no persistent record. Submitting the form triggers two
// emails (an owner notification and a buyer receipt with the PDF attached)
// and redirects to the confirmation page with the buyer name and product
// title in the query string. Delivery failures surface as a 502 instead of
// a false success.
package store
