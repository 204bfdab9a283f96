package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/0x0FACED/winged-fortune/pkg/config"
	"github.com/0x0FACED/winged-fortune/pkg/logger"
	"github.com/0x0FACED/winged-fortune/pkg/render"
	"github.com/0x0FACED/winged-fortune/pkg/voronoi"
	"github.com/0x0FACED/winged-fortune/static"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	log *logger.ZapLogger
}

// buildDiagram строит диаграмму по параметрам и делает шаги релаксации.
func buildDiagram(p config.Params, log *logger.ZapLogger) (*voronoi.Diagram, error) {
	sites := p.Sites()
	log.Info("[app] Сайты сгенерированы", zap.Int("n", len(sites)), zap.Bool("random", p.Random), zap.Int64("seed", p.Seed))

	diagram, err := voronoi.Compute(sites, voronoi.WithLogger(log))
	if err != nil {
		return nil, err
	}

	v := viewport(p)
	for i := 0; i < p.Relax; i++ {
		stepLog := log.With(zap.Int("step", i+1))
		diagram, err = voronoi.LloydRelax(diagram, v.RayLength, p.Clip(), p.Strength, voronoi.WithLogger(stepLog))
		if err != nil {
			return nil, err
		}
		stepLog.Info("[app] Шаг релаксации")
	}
	return diagram, nil
}

func viewport(p config.Params) render.Viewport {
	w, h := float64(p.Width), float64(p.Height)
	return render.Viewport{Width: w, Height: h, RayLength: 4 * (w + h)}
}

// http обработчик страницы с диаграмой и формой для ввода данных
func (a *app) diagramHandler(w http.ResponseWriter, r *http.Request) {
	p := config.Default()
	if r.Method == http.MethodPost {
		var err error
		if p, err = config.FromRequest(r); err != nil {
			a.log.Warn("[app] Неверные параметры", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	log := logger.NewWithLevel(zapcore.InfoLevel)
	defer log.ClearLogs()

	diagram, err := buildDiagram(p, log)
	if err != nil {
		a.log.Error("[app] Не удалось построить диаграмму", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	scatter := render.Chart(diagram, viewport(p))

	fmt.Fprintln(w, static.Page(p))

	if err := scatter.Render(w); err != nil {
		a.log.Error("[app] Ошибка рендеринга диаграммы", zap.Error(err))
	}

	fmt.Fprintln(w, static.Part2)
	// Вставляем логи в HTML
	fmt.Fprintln(w, log.HTML())
	fmt.Fprintln(w, static.Part3)
}

// paramsFromQuery - параметры для /svg, /png, /geojson берутся из строки запроса.
func (a *app) paramsFromQuery(w http.ResponseWriter, r *http.Request) (config.Params, *voronoi.Diagram, bool) {
	p, err := config.FromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return p, nil, false
	}
	log := logger.NewWithLevel(zapcore.WarnLevel, os.Stdout)
	diagram, err := buildDiagram(p, log)
	if err != nil {
		a.log.Error("[app] Не удалось построить диаграмму", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return p, nil, false
	}
	return p, diagram, true
}

func (a *app) svgHandler(w http.ResponseWriter, r *http.Request) {
	p, diagram, ok := a.paramsFromQuery(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := render.SVG(w, diagram, viewport(p)); err != nil {
		a.log.Error("[app] Ошибка SVG", zap.Error(err))
	}
}

func (a *app) pngHandler(w http.ResponseWriter, r *http.Request) {
	p, diagram, ok := a.paramsFromQuery(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := render.PNG(w, diagram, viewport(p)); err != nil {
		a.log.Error("[app] Ошибка PNG", zap.Error(err))
	}
}

func (a *app) geojsonHandler(w http.ResponseWriter, r *http.Request) {
	p, diagram, ok := a.paramsFromQuery(w, r)
	if !ok {
		return
	}
	data, err := render.GeoJSON(diagram, viewport(p))
	if err != nil {
		a.log.Error("[app] Ошибка GeoJSON", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.Write(data)
}

func main() {
	a := &app{log: logger.NewWithLevel(zapcore.InfoLevel, os.Stdout)}

	mux := http.NewServeMux()
	mux.HandleFunc("/", a.diagramHandler)
	mux.HandleFunc("/svg", a.svgHandler)
	mux.HandleFunc("/png", a.pngHandler)
	mux.HandleFunc("/geojson", a.geojsonHandler)

	addr := config.Addr()
	a.log.Info("[app] Сервер запущен", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		a.log.Fatal("[app] ListenAndServe", zap.Error(err))
	}
}
