/*
Package unichan defines the common interfaces that tie together the
unidirectional payment channel ledger: the key-value store abstraction,
transactions and messages, handlers and decorators, and the context
helpers used to pass block information into handler execution.

The actual channel logic lives in x/paychan, funds accounting in x/cash,
and persistence primitives in store and orm.
*/
package unichan
