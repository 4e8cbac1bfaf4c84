// Package emit renders the loaded catalog and topology into IEC 61131-3
// declaration text: the record types, the global variables that mirror each
// module instance, and the AT bindings that tie variable fields to input
// addresses.
//
// Emitters are pure. They return statement lines without a file envelope
// (TYPE, VAR, VAR_CONFIG), which the output package adds, and they return
// anomalies as Diagnostic values instead of logging them.
package emit
