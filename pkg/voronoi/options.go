package voronoi

import (
	"fmt"

	"github.com/0x0FACED/winged-fortune/pkg/geom"
	"github.com/0x0FACED/winged-fortune/pkg/logger"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Site - входная точка. Cookie - произвольная метка вызывающего,
// переносится в многоугольник диаграммы.
type Site struct {
	Pt     r2.Point
	Cookie int
}

func NewSite(x, y float64, cookie int) Site {
	return Site{Pt: r2.Point{X: x, Y: y}, Cookie: cookie}
}

func (s Site) String() string {
	return fmt.Sprintf("#%d(%g, %g)", s.Cookie, s.Pt.X, s.Pt.Y)
}

// Sites превращает точки в сайты с Cookie по порядку.
func Sites(pts []r2.Point) []Site {
	res := make([]Site, len(pts))
	for i, p := range pts {
		res[i] = Site{Pt: p, Cookie: i}
	}
	return res
}

type options struct {
	log *logger.ZapLogger
	eps float64
}

type Option func(*options)

// WithLogger - куда писать ход алгоритма. По умолчанию логов нет.
func WithLogger(log *logger.ZapLogger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithTolerance задает допуск для всех сравнений "почти равно".
// По умолчанию geom.Epsilon.
func WithTolerance(eps float64) Option {
	if eps <= 0 {
		panic("voronoi: tolerance must be positive")
	}
	return func(o *options) {
		o.eps = eps
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		log: logger.Nop(),
		eps: geom.Epsilon,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ErrInternal - нарушена внутренняя структура во время построения.
// Для корректного входа не возникает.
var ErrInternal = errors.New("voronoi: internal error")

// internalError летит паникой изнутри алгоритма и ловится в Compute.
type internalError struct {
	err error
}

func internalf(format string, args ...interface{}) {
	panic(internalError{err: errors.Wrapf(ErrInternal, format, args...)})
}

func assert(cond bool, format string, args ...interface{}) {
	if !cond {
		internalf(format, args...)
	}
}

// recoverInternal превращает панику internalError в ошибку. Остальные
// паники пробрасываются дальше.
func recoverInternal(err *error) {
	r := recover()
	if r == nil {
		return
	}
	ie, ok := r.(internalError)
	if !ok {
		panic(r)
	}
	*err = ie.err
}
