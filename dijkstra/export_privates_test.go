// SPDX-License-Identifier: MIT

package dijkstra

// ShortestPathResult exposes the Result behind ShortestPath to dijkstra_test.
var ShortestPathResult = shortestPathResult
