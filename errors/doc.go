/*
Package errors implements custom error interfaces for barter.

The package is based on root error instances that are registered with a
unique code. All errors created during runtime should wrap one of the
root errors. This allows error tests through the Is method and a safe
way to return error codes to the client without leaking internals.
*/
package errors
