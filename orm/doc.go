/*
Package orm breaks the state space into prefixed sections called
buckets. Each bucket contains only one type of model and offers
insert-if-absent, lookup and delete semantics keyed by a caller
provided primary key.
*/
package orm
