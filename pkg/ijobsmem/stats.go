/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package ijobsmem

import (
	"fmt"
	"strings"
)

const statsLineWidth = 110

func (js *jobs) Stats() string {
	type row struct {
		id      int64
		name    string
		state   string
		runtime float64
	}

	rows := make([]row, 0)
	for _, id := range js.Jobs() {
		j, err := js.job(id)
		if err != nil {
			continue
		}
		rows = append(rows, row{
			id:      j.ID(),
			name:    j.Name(),
			state:   string(j.State()),
			runtime: j.Runtime().Seconds(),
		})
	}

	line := strings.Repeat("_", statsLineWidth)
	out := strings.Builder{}
	out.WriteString(line + "\n")
	out.WriteString("id\t|\tName\t|\tStatus\t|\trun time\n")
	out.WriteString(line + "\n")

	wall := 0.0
	runtimes := make([]float64, 0, len(rows))
	for _, r := range rows {
		fmt.Fprintf(&out, "%d\t|\t%s\t|\t%s\t|\t%9.3f\n", r.id, r.name, r.state, r.runtime)
		wall += r.runtime
		runtimes = append(runtimes, r.runtime)
	}
	out.WriteString(line + "\n")

	elapsed := js.now().Sub(js.started).Seconds()
	speedup := 0.0
	if elapsed > 0 {
		speedup = wall / elapsed
	}
	fmt.Fprintf(&out, "Total execution time (Wall): %.3fs, Elapsed time: %.3fs. SpeedUp: %.3f\n", wall, elapsed, speedup)

	if n := len(rows); n > 0 {
		fmt.Fprintf(&out, "Average execution time (Wall/N): %.3fs, Average throughput: %.3fs\n",
			wall/float64(n), elapsed/float64(n))
		slope, ord := regress(runtimes, wall)
		fmt.Fprintf(&out, "Regression of execution time: ExecTime = %.3f + %f * NbJob\n", ord, slope)
	}
	return out.String()
}

// regress fits runtime against submission rank with ordinary least squares to
// expose drift: a positive slope means jobs are getting slower over time.
func regress(runtimes []float64, wall float64) (slope, ord float64) {
	n := float64(len(runtimes))
	if len(runtimes) <= 1 {
		return 0, wall
	}
	sx, sy, sxy, sxx := 0.0, 0.0, 0.0, 0.0
	for i, y := range runtimes {
		x := float64(i)
		sx += x
		sy += y
		sxy += x * y
		sxx += x * x
	}
	denom := n*sxx - sx*sx
	if denom == 0 {
		return 0, wall
	}
	slope = (n*sxy - sx*sy) / denom
	ord = (sy - slope*sx) / n
	return slope, ord
}
