// Package followup builds the JSON payloads for interaction followup
// messages.
//
// Builders here only accumulate fields into the outgoing object; they hold
// no control flow and do no validation, the gateway is the authority on
// payload rules. Set-style methods overwrite, add-style methods append.
// Every builder marshals to exactly the fields that were set.
package followup
