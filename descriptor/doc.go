/*
Package descriptor builds the plugin descriptor that the host reads to load ServerReady.

The descriptor is a small YAML document naming the plugin, its version, its entry point and the API version it
targets. It also lists the plugins it depends on, each with a relative load order. The host uses those load orders to
decide which plugin is initialised first; this package only describes the constraints and never resolves them.
*/
package descriptor
