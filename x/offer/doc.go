/*
Package offer implements a trustless two-party asset swap.

A maker publishes an offer to trade a fixed amount of one asset for a
fixed amount of another. The offered funds are moved into a vault
wallet at offer creation. The vault address is derived from the offer
identity, so no private key for it exists and nobody can move the
funds out except through the take operation.

Any taker that pays the wanted amount receives the full vault balance.
The three transfer legs of a take (vault to taker, vault residue to
maker, taker to maker) execute as one unit: either all of them apply
or none do.
*/
package offer
