// Package charts renders the dashboard graphs server-side with go-echarts.
// Each builder returns a self-contained HTML fragment embedded directly in
// the dashboard page.
package charts

import (
	"bytes"
	"html/template"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/krishivishwa/agriadmin/internal/app/system/stats"
)

const chartHeight = "360px"

// Orders renders a bar chart of order counts per bucket (weekday or month).
func Orders(title string, buckets []stats.Bucket) (template.HTML, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(title)...)
	bar.SetXAxis(labels(buckets))

	data := make([]opts.BarData, len(buckets))
	for i, b := range buckets {
		data[i] = opts.BarData{Name: b.Label, Value: b.Count}
	}
	bar.AddSeries("Orders", data)

	return render(bar)
}

// Earnings renders a line chart of earnings per bucket.
func Earnings(title string, buckets []stats.Bucket) (template.HTML, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions(title)...)
	line.SetXAxis(labels(buckets))

	data := make([]opts.LineData, len(buckets))
	for i, b := range buckets {
		data[i] = opts.LineData{Name: b.Label, Value: b.Earnings}
	}
	line.AddSeries("Earnings", data)

	return render(line)
}

// StatusPie renders the pending/delivered split.
func StatusPie(title string, summary stats.Summary) (template.HTML, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(globalOptions(title)...)
	pie.AddSeries("Orders", []opts.PieData{
		{Name: "Pending", Value: summary.Pending},
		{Name: "Delivered", Value: summary.Delivered},
	})

	return render(pie)
}

func labels(buckets []stats.Bucket) []string {
	out := make([]string, len(buckets))
	for i, b := range buckets {
		out[i] = b.Label
	}
	return out
}

func globalOptions(title string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "100%",
			Height: chartHeight,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func render(renderable interface{ Render(io.Writer) error }) (template.HTML, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
