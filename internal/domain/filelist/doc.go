// Package filelist manages named, ordered lists of file-path strings.
//
// Game scripts use these lists as download tables, precache lists, and
// similar ordered path collections. Each list is a duplicate-free sequence
// addressable by value or by dense positional index.
//
// The registry holds no locks: the scripting host executes cooperatively on
// a single thread, and every operation runs to completion without
// suspension. Concurrent embeddings must serialize access externally, one
// lock per registry held for the duration of each operation (the filelist
// provider does exactly that).
//
// Example Usage:
//
//	reg := filelist.NewRegistry()
//	reg.CreateList("downloads")
//	idx, err := reg.AddEntry("downloads", "sound/custom/intro.wav", false)
package filelist
