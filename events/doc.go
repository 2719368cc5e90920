// Package events defines the interaction event model shared by the
// dispatcher and the collector surfaces.
//
// Design decisions:
//   - Snowflake identity: channel, guild, author and message identifiers are
//     64-bit snowflakes, string-encoded on the wire as chat gateways do
//   - Efficient JSON: custom marshaling with pre-allocated type markers,
//     field-level reads through gjson rather than intermediate maps
//   - Lazy payloads: the interaction payload stays a gjson.Result so callers
//     only pay for the fields they actually inspect
//
// An Interaction is a single discrete notification delivered by the gateway:
// a component click, a modal submission, or an application command. The
// dispatcher decodes raw frames into Interactions and offers them to every
// registered subscription gate.
package events
