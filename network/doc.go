// Package network provides ready-made networks for the netpath core: the
// 12-node reference network and a YAML definition format for user networks.
//
// YAML layout:
//
//	name: reference
//	nodes: [A, B, C]
//	links:
//	  - {from: A, to: B, cost: 3}
//	  - {from: A, to: C, cost: 2}
//
// Node order in the file fixes NodeIDs (first node is id 0). Each link is
// undirected; listing a pair twice with the same cost is accepted.
package network
