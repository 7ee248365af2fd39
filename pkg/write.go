package zsplit

import (
	"fmt"
	"io"

	"github.com/jgbaldwinbrown/csvh"
)

func WriteZBarHeader(w io.Writer) error {
	_, e := fmt.Fprintf(w, "name\tuv\tpv\tamt\tuvZ\tpvZ\n")
	return e
}

func WriteZBar(w io.Writer, z ZBar) error {
	_, e := fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\t%v\n",
		z.Name,
		z.UV,
		z.PV,
		z.Amt,
		z.UVZ,
		z.PVZ,
	)
	return e
}

func WriteZBars(w io.Writer, zbars []ZBar) error {
	if e := WriteZBarHeader(w); e != nil {
		return e
	}
	for _, z := range zbars {
		if e := WriteZBar(w, z); e != nil {
			return e
		}
	}
	return nil
}

// WriteZBarsPath gzips the output when path ends in .gz.
func WriteZBarsPath(path string, zbars []ZBar) (err error) {
	w, e := csvh.CreateMaybeGz(path)
	if e != nil {
		return e
	}
	defer func() { csvh.DeferE(&err, w.Close()) }()

	return WriteZBars(w, zbars)
}
