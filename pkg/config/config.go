// Package config - параметры демо-сервера: из формы запроса и окружения.
package config

import (
	"math"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/0x0FACED/winged-fortune/pkg/voronoi"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

const (
	AddrEnv     = "FORTUNE_ADDR"
	DefaultAddr = ":8080"

	MaxSize     = 5000
	MaxStations = 2000
	MaxRelax    = 50
)

// Addr - адрес сервера из FORTUNE_ADDR или DefaultAddr.
func Addr() string {
	if addr := os.Getenv(AddrEnv); addr != "" {
		return addr
	}
	return DefaultAddr
}

// Params - параметры одной диаграммы.
type Params struct {
	Width    int
	Height   int
	Stations int
	Random   bool
	// 0 - зерно от текущего времени (см. FromRequest)
	Seed int64
	// шагов релаксации Ллойда
	Relax    int
	Strength float64
}

func Default() Params {
	return Params{
		Width:    1000,
		Height:   1000,
		Stations: 12,
		Strength: 1,
	}
}

// FromRequest читает параметры из формы. Незаполненные поля берутся из
// Default, ошибки разбора возвращаются.
func FromRequest(r *http.Request) (Params, error) {
	p := Default()
	if err := r.ParseForm(); err != nil {
		return p, errors.Wrap(err, "config: parse form")
	}

	var err error
	if p.Width, err = formInt(r, "width", p.Width); err != nil {
		return p, err
	}
	if p.Height, err = formInt(r, "height", p.Height); err != nil {
		return p, err
	}
	if p.Stations, err = formInt(r, "stations", p.Stations); err != nil {
		return p, err
	}
	if p.Relax, err = formInt(r, "relax", p.Relax); err != nil {
		return p, err
	}
	seed, err := formInt(r, "seed", int(p.Seed))
	if err != nil {
		return p, err
	}
	p.Seed = int64(seed)
	if p.Seed == 0 {
		p.Seed = time.Now().UnixNano()
	}
	if s := r.FormValue("strength"); s != "" {
		if p.Strength, err = strconv.ParseFloat(s, 64); err != nil {
			return p, errors.Wrapf(err, "config: field %q", "strength")
		}
	}
	p.Random = r.FormValue("random") == "true" || r.FormValue("random") == "on"

	return p, p.Validate()
}

func formInt(r *http.Request, key string, def int) (int, error) {
	s := r.FormValue(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def, errors.Wrapf(err, "config: field %q", key)
	}
	return v, nil
}

func (p Params) Validate() error {
	switch {
	case p.Width < 1 || p.Width > MaxSize:
		return errors.Errorf("config: width %d is out of [1, %d]", p.Width, MaxSize)
	case p.Height < 1 || p.Height > MaxSize:
		return errors.Errorf("config: height %d is out of [1, %d]", p.Height, MaxSize)
	case p.Stations < 1 || p.Stations > MaxStations:
		return errors.Errorf("config: stations %d is out of [1, %d]", p.Stations, MaxStations)
	case p.Relax < 0 || p.Relax > MaxRelax:
		return errors.Errorf("config: relax %d is out of [0, %d]", p.Relax, MaxRelax)
	case p.Strength <= 0 || p.Strength > 2:
		return errors.Errorf("config: strength %g is out of (0, 2]", p.Strength)
	}
	return nil
}

// Sites генерирует сайты: случайные (по зерну) или сеткой.
func (p Params) Sites() []voronoi.Site {
	if p.Random {
		return RandomSites(rand.New(rand.NewSource(p.Seed)), p.Stations, p.Width, p.Height)
	}
	return GridSites(p.Stations, p.Width, p.Height)
}

// RandomSites - n целых точек в [0, width) x [0, height). Генератор передается
// явно, чтобы результат можно было повторить.
func RandomSites(rnd *rand.Rand, n, width, height int) []voronoi.Site {
	sites := make([]voronoi.Site, n)
	for i := range sites {
		sites[i] = voronoi.NewSite(float64(rnd.Intn(width)), float64(rnd.Intn(height)), i)
	}
	return sites
}

// GridSites раскладывает n точек по центрам клеток сетки.
func GridSites(n, width, height int) []voronoi.Site {
	sites := make([]voronoi.Site, 0, n)

	rows := int(math.Sqrt(float64(n)))
	if rows < 1 {
		rows = 1
	}
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows && len(sites) < n; i++ {
		for j := 0; j < cols && len(sites) < n; j++ {
			x := xStep/2 + float64(j)*xStep
			y := yStep/2 + float64(i)*yStep
			sites = append(sites, voronoi.NewSite(x, y, len(sites)))
		}
	}
	return sites
}

// Clip - прямоугольник области против часовой стрелки.
func (p Params) Clip() []r2.Point {
	w, h := float64(p.Width), float64(p.Height)
	return []r2.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
}
