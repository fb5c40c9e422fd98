// Package graphio provides serialization types for graphs.
//
// This package defines the canonical wire format for edgekit's graph data,
// used for JSON API responses, files, and store records. The types carry
// bson tags as well, so store backends can encode records in BSON without a
// second set of structs.
//
// # Format
//
// Graphs use a simple node-link JSON format with 1-indexed endpoints,
// matching the text encoding's display form:
//
//	{
//	  "nodes": 3,
//	  "edges": [{"a": 1, "b": 2, "weight": 4}, {"a": 2, "b": 3, "weight": 7}]
//	}
//
// Common operations:
//
//	doc := graphio.FromGraph(g)                 // Graph → Document
//	g, _ := graphio.ToList(doc)                 // Document → AdjacencyList
//	data, _ := graphio.Marshal(g)               // Graph → []byte
//	_ = graphio.WriteFile(g, "edges.json")      // Graph → file
package graphio
