package render

import (
	"github.com/0x0FACED/winged-fortune/pkg/voronoi"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// FeatureCollection - ячейки как полигоны (кольцо замкнуто, против часовой
// стрелки) и сайты как точки. У обоих есть свойство cookie.
func FeatureCollection(d *voronoi.Diagram, v Viewport) (*geojson.FeatureCollection, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	fc := geojson.NewFeatureCollection()
	for _, cell := range Cells(d, v) {
		if len(cell.Points) < 3 {
			continue
		}
		ring := make([][]float64, 0, len(cell.Points)+1)
		for _, p := range cell.Points {
			ring = append(ring, []float64{p.X, p.Y})
		}
		ring = append(ring, ring[0])

		f := geojson.NewPolygonFeature([][][]float64{ring})
		f.SetProperty("kind", "cell")
		f.SetProperty("cookie", cell.Site.Cookie)
		f.SetProperty("unbounded", cell.Unbounded)
		fc.AddFeature(f)
	}
	for _, site := range d.Sites() {
		f := geojson.NewPointFeature([]float64{site.Pt.X, site.Pt.Y})
		f.SetProperty("kind", "site")
		f.SetProperty("cookie", site.Cookie)
		fc.AddFeature(f)
	}
	return fc, nil
}

// GeoJSON - FeatureCollection в виде JSON.
func GeoJSON(d *voronoi.Diagram, v Viewport) ([]byte, error) {
	fc, err := FeatureCollection(d, v)
	if err != nil {
		return nil, err
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "render: marshal geojson")
	}
	return data, nil
}
