package zsplit

import (
	"fmt"
	"slices"

	"github.com/jgbaldwinbrown/iterh"
)

type Bar struct {
	Name string
	UV   float64
	PV   float64
	Amt  float64
}

type ZBar struct {
	Bar
	UVZ float64
	PVZ float64
}

// SampleBars returns a fresh copy of the built-in dataset on every call.
func SampleBars() []Bar {
	return []Bar{
		{Name: "Page B", UV: 3000, PV: 1398, Amt: 2210},
		{Name: "Page C", UV: 2000, PV: 9800, Amt: 2290},
		{Name: "Page D", UV: 2780, PV: 3908, Amt: 2000},
		{Name: "Page E", UV: 1890, PV: 4800, Amt: 2181},
		{Name: "Page F", UV: 2390, PV: 3800, Amt: 2500},
		{Name: "Page G", UV: 3490, PV: 4300, Amt: 2100},
	}
}

type Field int

const (
	UV Field = iota
	PV
	Amt
)

func (f Field) String() string {
	switch f {
	case UV:
		return "uv"
	case PV:
		return "pv"
	case Amt:
		return "amt"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

func (f Field) Value(b Bar) float64 {
	switch f {
	case UV:
		return b.UV
	case PV:
		return b.PV
	case Amt:
		return b.Amt
	}
	panic(fmt.Errorf("Field.Value: unknown field %v", f))
}

// Z panics for fields that are never z-scored.
func (f Field) Z(z ZBar) float64 {
	switch f {
	case UV:
		return z.UVZ
	case PV:
		return z.PVZ
	}
	panic(fmt.Errorf("Field.Z: field %v has no z-score", f))
}

func (f Field) Values(bars []Bar) []float64 {
	return slices.Collect(iterh.Transform(slices.Values(bars), f.Value))
}

func (f Field) ZValues(zbars []ZBar) []float64 {
	return slices.Collect(iterh.Transform(slices.Values(zbars), f.Z))
}

func (f Field) Points(zbars []ZBar) []Point {
	out := make([]Point, 0, len(zbars))
	for _, z := range zbars {
		out = append(out, Point{Value: f.Value(z.Bar), Z: f.Z(z)})
	}
	return out
}

func Unwrap(zbars []ZBar) []Bar {
	return slices.Collect(iterh.Transform(slices.Values(zbars), func(z ZBar) Bar {
		return z.Bar
	}))
}
