// Package skins provides the types and functions behind the `skins` command:
// a personal price tracker for a marketplace inventory of CS weapon skins.
//
// The core functionalities include:
//   - Snapshot Management: decoding the inventory records fetched from
//     steamwebapi.com, validating the fields the tracker relies on, and
//     persisting the raw records to a flat JSON file.
//   - Valuation: comparing what the owner paid for each item (when known)
//     with the latest market price, per item and in total.
//   - Staleness: flagging market prices that were checked too long ago.
//
// Rendering lives in the renderer package, the remote fetch in the
// steamwebapi package and the command line in the cmd package.
package skins
