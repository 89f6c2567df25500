// Package tokens reads the whitespace-separated numeric input of a run.
//
// Input may be plain text or a zstd or LZ4 frame stream; the format is
// detected from the leading magic bytes.
//
//	values, err := tokens.ReadFile("points.txt.zst")
//	cfg, points, err := lloyd.Load(values)
package tokens
