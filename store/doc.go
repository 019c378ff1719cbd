// Package store persists named networks in SQLite (modernc.org/sqlite, pure Go).
//
// Schema:
//
//	networks(id, name UNIQUE, created_at)
//	nodes(network_id, idx, label)            -- idx is the core.NodeID
//	links(network_id, node_a, node_b, cost)  -- node_a < node_b, one row per pair
//
// Save replaces a network atomically; Load rebuilds it with RegisterNode in idx
// order and Link per row, so a loaded graph has the same ids, labels and costs
// as the saved one. Use ":memory:" for throwaway stores in tests.
package store
