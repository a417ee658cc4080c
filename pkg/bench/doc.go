// Package bench replays a generated workload against an uncached baseline
// and against a rangecache.RangeCache, and reports how long each took.
//
// Both runs start from identical copies of the values and apply identical
// ops. Compare fails with ErrChecksumMismatch if the cached run returns a
// different answer for any query, which makes every benchmark run a
// correctness check as well.
//
//	report, err := bench.Compare(ctx, bench.DefaultConfig(), log)
//	if err != nil {
//		return err
//	}
//	return report.Write(os.Stdout, bench.FormatText)
package bench
