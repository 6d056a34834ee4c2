// Package output renders pathway listings and sends them to a destination.
//
// The package is organized around three concerns:
//
//   - Listings (listing.go): the records of one load together with the
//     active filters, the match flags, and the "N of M" summary.
//
//   - Serialization (serializer.go): deterministic YAML, JSON, table, and
//     markdown renderings of a [Listing], looked up by name through a
//     [Registry].
//
//   - Writers (writer.go): pluggable output destinations via the [Writer]
//     interface, with [StdoutWriter] and [FileWriter] implementations.
package output
