// Package api exposes the coloring pipeline over HTTP.
//
//	POST /v1/colorings   {"matrix": [[0,1],[1,0]], "palette": [...], "strategy": "...",
//	                      "planarity_gate": true, "cross_check": false}
//	POST /v1/planarity   {"matrix": [[...]]}
//	GET  /healthz
//	GET  /metrics
//
// Infeasible and gated results are 200 responses; malformed input is 400,
// oversized input 413, a search cut short by the request deadline 504.
package api
