/*
Package cash defines a simple wallet implementation and a controller
that moves coins between wallets.

The Controller is the single transfer service of the application. Any
extension that needs to move funds, like x/offer, does so through the
Controller rather than touching wallet state directly.
*/
package cash
