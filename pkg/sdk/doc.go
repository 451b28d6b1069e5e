// Package lexidex embeds the Greek dictionary lookup pipeline in a Go
// program: no HTTP server, the same answers.
//
// A Client opens a read-only dictionary file and, optionally, the Morpheus
// analyzer and a morphology cache:
//
//	client, _ := lexidex.New(ctx,
//	    lexidex.WithDictionary("/data/bailly.db", "2024-05"),
//	    lexidex.WithMorpheus("/opt/morpheus/bin/cruncher", "/opt/morpheus/stemlib"),
//	    lexidex.WithBoltCache("/var/cache/lexidex.bolt", 24*time.Hour),
//	)
//	defer client.Close()
//
//	res, _ := client.Lookup(ctx, lexidex.LookupRequest{Query: "λόγος"})
//	e, _ := client.Entry(ctx, "logos", nil, true)
//
// Results encode to the same JSON as the HTTP API.
package lexidex
