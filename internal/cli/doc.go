// Package cli wires the eqviz commands: the visualizer itself (the root
// command), monitor, config and version.
package cli
