package render

import (
	"github.com/0x0FACED/winged-fortune/pkg/voronoi"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func prepareScatter(scatter *charts.Scatter, v Viewport) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Диаграмма Вороного (Форчун)",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Ширина",
			Min:  0,
			Max:  v.Width,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Высота",
			Min:  0,
			Max:  v.Height,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Chart - график echarts: сайты точками, ребра (обрезанные областью)
// отдельными линиями. Лучи рисуются пунктиром.
func Chart(d *voronoi.Diagram, v Viewport) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, v)

	points := make([]opts.ScatterData, 0, len(d.Polygons))
	for _, site := range d.Sites() {
		points = append(points, opts.ScatterData{
			Name:  site.String(),
			Value: []float64{site.Pt.X, site.Pt.Y},
		})
	}
	scatter.AddSeries("Станции", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for _, s := range Segments(d, v) {
		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)

		style := opts.LineStyle{Width: 2}
		if s.Ray {
			style.Type = "dashed"
		}
		line.AddSeries("Границы", []opts.LineData{
			{Value: []float64{s.A.X, s.A.Y}},
			{Value: []float64{s.B.X, s.B.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(style),
		)

		scatter.Overlap(line)
	}

	return scatter
}
