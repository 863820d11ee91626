/*
Package utils contains various utility decorators that are used
to construct an application middleware stack.
*/
package utils
