// Package machines embeds the bundled machine definitions.
package machines

import "embed"

// Fibonacci names the bundled Fibonacci machine inside FS.
const Fibonacci = "fibonacci.json"

// FS holds every bundled definition at its root.
//
//go:embed *.json
var FS embed.FS
