/*
Package barter provides the framework core for a trustless bilateral
asset-swap system.

The root package defines the building blocks shared by all extensions:
Condition and Address for keyless, deterministically derivable
authorities, the Msg/Tx abstractions, the Handler interface consumed by
the router, and the KVStore interfaces that all state access goes
through.

Extensions live under x/. The x/cash package implements wallets and the
coin moving controller, x/offer implements the swap escrow itself.
*/
package barter
