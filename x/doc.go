/*
Package x holds interfaces and helpers shared by the extensions. Only
parts of the code that are used by more than one extension belong here.
*/
package x
