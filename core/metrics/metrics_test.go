package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/corekit/core/atom"
	"github.com/joshuapare/corekit/core/objpool"
	"github.com/joshuapare/corekit/core/set"
)

func gather(t *testing.T, c prometheus.Collector) map[string]float64 {
	t.Helper()
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))
	families, err := reg.Gather()
	require.NoError(t, err)

	out := make(map[string]float64, len(families))
	for _, mf := range families {
		require.Equal(t, dto.MetricType_GAUGE, mf.GetType())
		require.Len(t, mf.GetMetric(), 1)
		out[mf.GetName()] = mf.GetMetric()[0].GetGauge().GetValue()
	}
	return out
}

func TestAtomCollector(t *testing.T) {
	tbl := atom.NewTable(atom.Options{Shards: 1})
	defer tbl.Close()
	tbl.MustIntern("Alpha")
	tbl.MustIntern("ALPHA")
	tbl.MustIntern("beta")

	got := gather(t, NewAtomCollector(tbl, "test"))
	assert.Equal(t, map[string]float64{
		"test_atom_strings": 2,
		"test_atom_bytes":   9,
		"test_atom_slabs":   1,
	}, got)
}

type job int

func (j job) Key() int { return int(j) }

func TestPoolCollector(t *testing.T) {
	p := objpool.NewPool(objpool.DefaultOptions())
	jobs := objpool.StorageFor[job](p, set.HashInt[int])
	for i := range 3 {
		_, err := jobs.Insert(job(i))
		require.NoError(t, err)
	}

	got := gather(t, NewPoolCollector(p, ""))
	assert.Equal(t, map[string]float64{
		"objpool_objects": 3,
		"objpool_types":   1,
	}, got)
}
