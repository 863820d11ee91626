/*
Package bartertest provides mocks and helpers for testing handlers
and decorators without spinning up a full application.
*/
package bartertest
