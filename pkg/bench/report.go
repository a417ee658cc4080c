package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rangecache"
)

// Format selects how a Report is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Report summarizes a baseline versus cached comparison.
type Report struct {
	RunID    string           `json:"run_id" yaml:"run_id"`
	Config   Config           `json:"config" yaml:"config"`
	Baseline Result           `json:"baseline" yaml:"baseline"`
	Cached   Result           `json:"cached" yaml:"cached"`
	Speedup  float64          `json:"speedup" yaml:"speedup"`
	Stats    rangecache.Stats `json:"stats" yaml:"stats"`
}

// Write renders the report in the requested format.
func (r *Report) Write(w io.Writer, format Format) error {
	switch format {
	case FormatText, "":
		return r.writeText(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func (r *Report) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "run\t%s\n", r.RunID)
	fmt.Fprintf(tw, "workload\t%s elements, %s ops (%s updates), seed %d\n",
		humanize.Comma(int64(r.Config.Size)),
		humanize.Comma(int64(r.Baseline.Queries+r.Baseline.Updates)),
		humanize.Comma(int64(r.Baseline.Updates)),
		r.Config.Seed,
	)
	fmt.Fprintf(tw, "%s\t%s\n", r.Baseline.Name, r.Baseline.Elapsed)
	fmt.Fprintf(tw, "%s\t%s\t(speedup x%.2f)\n", r.Cached.Name, r.Cached.Elapsed, r.Speedup)
	fmt.Fprintf(tw, "cache\t%s/%s ranges, %s hits, %s misses, hit ratio %.1f%%\n",
		humanize.Comma(int64(r.Stats.Len)),
		humanize.Comma(int64(r.Stats.Cap)),
		humanize.Comma(int64(r.Stats.Hits)),
		humanize.Comma(int64(r.Stats.Misses)),
		100*r.Stats.HitRatio(),
	)
	fmt.Fprintf(tw, "churn\t%s evictions, %s invalidations\n",
		humanize.Comma(int64(r.Stats.Evictions)),
		humanize.Comma(int64(r.Stats.Invalidations)),
	)

	return tw.Flush()
}
