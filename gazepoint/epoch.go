package gazepoint

import "strings"

// Epoch divides recordings into segments based on annotation markers in the
// USER column. A segment is a maximal run of identical USER values; runs
// whose marker contains the annotation substring are kept. Segments from
// all sessions are returned flattened, preserving session order.
//
// Recordings without a USER column contribute no segments.
func Epoch(recs []*Recording, annotation string) ([]*Recording, error) {
	var out []*Recording

	for _, rec := range recs {
		if !rec.HasColumn(ColUser) || rec.Len() == 0 {
			continue
		}

		markers, err := rec.Strings(ColUser)
		if err != nil {
			return nil, err
		}

		start := 0
		for i := 1; i <= len(markers); i++ {
			if i < len(markers) && markers[i] == markers[start] {
				continue
			}

			if strings.Contains(markers[start], annotation) {
				seg, err := rec.Slice(start, i)
				if err != nil {
					return nil, err
				}
				out = append(out, seg)
			}

			start = i
		}
	}

	return out, nil
}
