/*
Package paychan implements a unidirectional payment channel between
a client and a single fixed payee.

A client escrows funds once by funding the channel for its address.
Off-channel, the client then hands the payee signed vouchers, each
authorizing a new lower channel balance. The payee redeems the most
favorable voucher on the ledger whenever it wants, receiving the
difference between the recorded and the authorized balance. If the
payee stops cooperating, the client challenges the channel and, once
the dispute window has elapsed, defunds the remainder.

There is exactly one channel per client address. Vouchers carry no
sequence numbers, so they must be redeemed in strictly decreasing
order of their authorized balance.
*/
package paychan
