/*
Package plugin turns the [[dependency]] entries of the configuration into the dependencies listed in the plugin
descriptor.

# Details
Every entry is a free-form table. The package tries each registered provider in turn; the first provider that
recognises the entry decides what kind of dependency it is and reads the remaining fields. More specific providers
should therefore be registered last, as they are checked first. If no provider recognises an entry the process stops,
as the descriptor would otherwise silently miss a dependency.

The package also computes checksums over the files the descriptor is generated from. These are stored in the lock
file so that an unchanged configuration does not produce a new descriptor.
*/
package plugin
