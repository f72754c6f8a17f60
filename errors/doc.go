/*
Package errors implements custom error interfaces for the ledger.

The idea is to reuse as many errors from this package as possible and
define custom package errors only when an error code must be observable
by a client. All errors declare a numeric code, unique within the whole
application, that is reported to the host together with the failure.

Create new instances of an error with the Wrap function. Test the error
category with the root error's Is method.
*/
package errors
