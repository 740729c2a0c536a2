// Command settleup computes balances and settlement transfers for an event
// snapshot stored as JSON or YAML.
//
// Usage:
//
//	settleup balances event.yaml
//	settleup settle event.yaml --details "Card 2202 ..."
//	settleup settle event.json --json --server http://localhost:8080
//	settleup version
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
