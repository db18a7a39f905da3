package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats summarizes a finished render.
type RenderStats struct {
	Width, Height   int
	Passes          int
	SamplesPerPixel int
	Tiles           int
	Workers         int
	Elapsed         time.Duration
}

// TotalSamples returns the number of radiance samples taken.
func (rs RenderStats) TotalSamples() int {
	return rs.Width * rs.Height * rs.SamplesPerPixel
}

// SamplesPerSecond returns the sampling throughput.
func (rs RenderStats) SamplesPerSecond() float64 {
	if rs.Elapsed <= 0 {
		return 0
	}
	return float64(rs.TotalSamples()) / rs.Elapsed.Seconds()
}

// WriteTable renders the stats as a table.
func (rs RenderStats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAutoFormatHeaders(false)

	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", rs.Width, rs.Height)})
	table.Append([]string{"Passes", fmt.Sprintf("%d", rs.Passes)})
	table.Append([]string{"Samples/pixel", fmt.Sprintf("%d", rs.SamplesPerPixel)})
	table.Append([]string{"Total samples", fmt.Sprintf("%d", rs.TotalSamples())})
	table.Append([]string{"Tiles", fmt.Sprintf("%d", rs.Tiles)})
	table.Append([]string{"Workers", fmt.Sprintf("%d", rs.Workers)})
	table.Append([]string{"Elapsed", rs.Elapsed.Round(time.Millisecond).String()})
	table.Append([]string{"Samples/sec", fmt.Sprintf("%.0f", rs.SamplesPerSecond())})

	table.Render()
}
