// Package testing provides helpers for testing widget trees.
//
// # Finding widgets
//
//	root := widgets.WindowCreate(nil, 0, 0, 320, 240)
//	ui.Build(doc, root, ui.Options{})
//	ok := tktest.Find(root, tktest.ByName("ok")).First()
//
// # Recording paint output
//
//	var c tktest.RecordingCanvas
//	root.Paint(&c)
//	texts := c.Texts()
//
// # Golden snapshots
//
// Capture serializes a tree and its display list to JSON for golden-file
// comparison. Run with TK_UPDATE_SNAPSHOTS=1 to rewrite the files:
//
//	tktest.Capture(root).MatchesFile(t, "testdata/login.snapshot.json")
//
// # Counting constructors
//
// CountingConstructor tracks how many widgets a registered constructor
// created and how many are still alive:
//
//	ctor := tktest.NewCountingConstructor("my_widget")
//	f.Register("my_widget", ctor.Create)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import tktest "github.com/go-drift/tk/pkg/testing"
package testing
