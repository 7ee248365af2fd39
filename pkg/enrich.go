package zsplit

import (
	"fmt"
)

// AddZScoresShared scores both uv and pv against the mean and standard
// deviation of the uv series.
func AddZScoresShared(bars []Bar) ([]ZBar, error) {
	s, e := Summarize(UV.Values(bars))
	if e != nil {
		return nil, fmt.Errorf("AddZScoresShared: %w", e)
	}
	out := make([]ZBar, 0, len(bars))
	for _, b := range bars {
		uvz, e := s.ZScore(b.UV)
		if e != nil {
			return nil, fmt.Errorf("AddZScoresShared: %v: %w", b.Name, e)
		}
		pvz, e := s.ZScore(b.PV)
		if e != nil {
			return nil, fmt.Errorf("AddZScoresShared: %v: %w", b.Name, e)
		}
		out = append(out, ZBar{Bar: b, UVZ: uvz, PVZ: pvz})
	}
	return out, nil
}

// AddZScoresPerField scores each field against its own series.
func AddZScoresPerField(bars []Bar) ([]ZBar, error) {
	if len(bars) == 0 {
		return nil, fmt.Errorf("AddZScoresPerField: %w", EmptyInputError)
	}
	uvs := UV.Values(bars)
	pvs := PV.Values(bars)
	out := make([]ZBar, 0, len(bars))
	for _, b := range bars {
		uvz, e := ZScoreOf(b.UV, uvs)
		if e != nil {
			return nil, fmt.Errorf("AddZScoresPerField: %v: %w", b.Name, e)
		}
		pvz, e := ZScoreOf(b.PV, pvs)
		if e != nil {
			return nil, fmt.Errorf("AddZScoresPerField: %v: %w", b.Name, e)
		}
		out = append(out, ZBar{Bar: b, UVZ: uvz, PVZ: pvz})
	}
	return out, nil
}
