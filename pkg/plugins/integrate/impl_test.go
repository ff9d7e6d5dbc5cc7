/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package integrate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drnecj/UPBL09a/pkg/coreutils"
	"github.com/drnecj/UPBL09a/pkg/iimages"
	"github.com/drnecj/UPBL09a/pkg/iimagesimpl"
	"github.com/drnecj/UPBL09a/pkg/iintegrator"
	"github.com/drnecj/UPBL09a/pkg/iintegratorimpl"
	"github.com/drnecj/UPBL09a/pkg/imetrics"
	"github.com/drnecj/UPBL09a/pkg/iplugin"
	"github.com/drnecj/UPBL09a/pkg/objcache"
)

const testPONI = `# centered detector, beam orthogonal to the detector plane
poni_version: 2
Detector: Detector
Detector_config: {"pixel1": 1e-04, "pixel2": 1e-04}
Distance: 0.1
Poni1: 1.6e-03
Poni2: 1.6e-03
Rot1: 0.0
Rot2: 0.0
Rot3: 0.0
Wavelength: 1e-10
`

type testHost struct {
	registry iplugin.IPluginRegistry
	cache    objcache.ICache[string, iintegrator.IIntegrator]
	metrics  imetrics.IMetrics
}

func newTestHost() *testHost {
	host := &testHost{
		registry: iplugin.Provide(),
		cache:    objcache.New[string, iintegrator.IIntegrator](objcache.DefaultCacheSize, nil),
		metrics:  imetrics.Provide(),
	}
	Provide(host.registry, host.cache, iintegratorimpl.Provide(), iimagesimpl.Provide(), host.metrics, "test")
	return host
}

func (h *testHost) newIntegrate(t *testing.T) *integratePlugin {
	t.Helper()
	plugin, err := h.registry.New(PluginIntegrate)
	require.NoError(t, err)
	return plugin.(*integratePlugin)
}

func (h *testHost) metricValue(t *testing.T, name string) float64 {
	t.Helper()
	value := 0.0
	require.NoError(t, h.metrics.List(func(metric imetrics.IMetric, metricValue float64) error {
		if metric.Name() == name {
			value = metricValue
		}
		return nil
	}))
	return value
}

func writeTestPONI(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "test.poni")
	require.NoError(t, os.WriteFile(path, []byte(testPONI), 0644))
	return path
}

func writeTestFrame(t *testing.T, dir, name string, value float64) string {
	t.Helper()
	frame := iimages.Frame{Dim1: 32, Dim2: 32, Data: make([]float64, 32*32)}
	for i := range frame.Data {
		frame.Data[i] = value
	}
	path := filepath.Join(dir, name)
	require.NoError(t, iimagesimpl.WriteEDF(path, frame))
	return path
}

func TestBasicUsage(t *testing.T) {
	require := require.New(t)

	host := newTestHost()
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	require.NoError(os.Mkdir(outDir, 0755))
	poni := writeTestPONI(t, dir)
	frames := []interface{}{
		writeTestFrame(t, dir, "frame1.edf", 5),
		writeTestFrame(t, dir, "frame2.edf", 7),
		writeTestFrame(t, dir, "frame3.edf", 9),
	}

	plugin, err := host.registry.New(PluginIntegrate)
	require.NoError(err)

	// the input is shaped exactly like a decoded job JSON
	require.NoError(plugin.Setup(coreutils.MapObject{
		"plugin_name":      PluginIntegrate,
		"job_id":           float64(1),
		fieldOutputDir:     outDir,
		fieldPoniFile:      poni,
		fieldInputFiles:    frames,
		fieldMonitorValues: []interface{}{float64(1), float64(1.1), float64(2)},
		fieldNpt:           float64(200),
		fieldUnit:          "2th_deg",
	}))
	require.NoError(plugin.Process(context.Background()))

	output, err := plugin.Teardown()
	require.NoError(err)
	outputFiles, ok := output[fieldOutputFiles].([]string)
	require.True(ok)
	require.Equal([]string{
		filepath.Join(outDir, "frame1.dat"),
		filepath.Join(outDir, "frame2.dat"),
		filepath.Join(outDir, "frame3.dat"),
	}, outputFiles)
	for _, path := range outputFiles {
		content, err := os.ReadFile(path)
		require.NoError(err)
		require.NotEmpty(content)
		require.Equal(byte('#'), content[0])
	}
	require.Equal(3.0, host.metricValue(t, framesProcessedTotal))
	require.Equal(0.0, host.metricValue(t, framesSkippedTotal))
}

func TestIntegratorReuse(t *testing.T) {
	require := require.New(t)

	host := newTestHost()
	dir := t.TempDir()
	poni := writeTestPONI(t, dir)
	input := func() coreutils.MapObject {
		return coreutils.MapObject{fieldOutputDir: dir, fieldPoniFile: poni}
	}

	first := host.newIntegrate(t)
	require.NoError(first.Setup(input()))

	t.Run("Should store the freshly built integrator on first acquire", func(t *testing.T) {
		cached, ok := host.cache.Get(first.ai.Key())
		require.True(ok)
		require.Same(first.ai, cached)
		require.Equal(1, host.cache.Len())
	})

	second := host.newIntegrate(t)
	require.NoError(second.Setup(input()))

	t.Run("Should hand a private clone to the second acquire", func(t *testing.T) {
		require.NotSame(first.ai, second.ai)
		require.Equal(first.ai.Key(), second.ai.Key())

		// the cache still holds the first instance
		cached, ok := host.cache.Get(first.ai.Key())
		require.True(ok)
		require.Same(first.ai, cached)
		require.Equal(1, host.cache.Len())
	})

	t.Run("Should count constructions and clones", func(t *testing.T) {
		require.Equal(2.0, host.metricValue(t, integratorsBuiltTotal))
		require.Equal(1.0, host.metricValue(t, integratorsClonedTotal))
	})
}

func TestSkippedFrames(t *testing.T) {
	setup := func(t *testing.T) (host *testHost, dir, poni string) {
		t.Helper()
		host = newTestHost()
		dir = t.TempDir()
		poni = writeTestPONI(t, dir)
		return host, dir, poni
	}

	t.Run("Should skip a missing file and keep going", func(t *testing.T) {
		require := require.New(t)
		host, dir, poni := setup(t)
		first := writeTestFrame(t, dir, "frame1.edf", 5)
		third := writeTestFrame(t, dir, "frame3.edf", 9)

		plugin := host.newIntegrate(t)
		require.NoError(plugin.Setup(coreutils.MapObject{
			fieldOutputDir:  dir,
			fieldPoniFile:   poni,
			fieldInputFiles: []string{first, filepath.Join(dir, "frame2.edf"), third},
		}))
		require.NoError(plugin.Process(context.Background()))

		output, err := plugin.Teardown()
		require.NoError(err)
		require.Equal([]string{
			filepath.Join(dir, "frame1.dat"),
			filepath.Join(dir, "frame3.dat"),
		}, output[fieldOutputFiles])
		require.Contains(plugin.Info(), "does not exist")
		require.Equal(2.0, host.metricValue(t, framesProcessedTotal))
		require.Equal(1.0, host.metricValue(t, framesSkippedTotal))
	})

	t.Run("Should skip non-positive monitor values", func(t *testing.T) {
		require := require.New(t)
		host, dir, poni := setup(t)
		files := []string{
			writeTestFrame(t, dir, "frame1.edf", 5),
			writeTestFrame(t, dir, "frame2.edf", 7),
			writeTestFrame(t, dir, "frame3.edf", 9),
		}

		plugin := host.newIntegrate(t)
		require.NoError(plugin.Setup(coreutils.MapObject{
			fieldOutputDir:     dir,
			fieldPoniFile:      poni,
			fieldInputFiles:    files,
			fieldMonitorValues: []float64{1, 0, -2},
		}))
		require.NoError(plugin.Process(context.Background()))

		output, err := plugin.Teardown()
		require.NoError(err)
		require.Equal([]string{filepath.Join(dir, "frame1.dat")}, output[fieldOutputFiles])
		require.Contains(plugin.Info(), "monitor value is 0")
		require.Contains(plugin.Info(), "monitor value is -2")
	})

	t.Run("Should zip monitors and files to the shorter sequence", func(t *testing.T) {
		require := require.New(t)
		host, dir, poni := setup(t)
		files := []string{
			writeTestFrame(t, dir, "frame1.edf", 5),
			writeTestFrame(t, dir, "frame2.edf", 7),
		}

		plugin := host.newIntegrate(t)
		require.NoError(plugin.Setup(coreutils.MapObject{
			fieldOutputDir:     dir,
			fieldPoniFile:      poni,
			fieldInputFiles:    files,
			fieldMonitorValues: []float64{1},
		}))
		require.NoError(plugin.Process(context.Background()))

		output, err := plugin.Teardown()
		require.NoError(err)
		require.Equal([]string{filepath.Join(dir, "frame1.dat")}, output[fieldOutputFiles])
	})

	t.Run("Should skip an undecodable file", func(t *testing.T) {
		require := require.New(t)
		host, dir, poni := setup(t)
		good := writeTestFrame(t, dir, "frame1.edf", 5)
		corrupt := filepath.Join(dir, "frame2.edf")
		require.NoError(os.WriteFile(corrupt, []byte("not an image"), 0644))

		plugin := host.newIntegrate(t)
		require.NoError(plugin.Setup(coreutils.MapObject{
			fieldOutputDir:  dir,
			fieldPoniFile:   poni,
			fieldInputFiles: []string{corrupt, good},
		}))
		require.NoError(plugin.Process(context.Background()))

		output, err := plugin.Teardown()
		require.NoError(err)
		require.Equal([]string{filepath.Join(dir, "frame1.dat")}, output[fieldOutputFiles])
		require.Equal(1.0, host.metricValue(t, framesSkippedTotal))
	})
}

func TestSetupFailures(t *testing.T) {
	host := newTestHost()
	dir := t.TempDir()
	poni := writeTestPONI(t, dir)

	t.Run("Should fail without output_dir", func(t *testing.T) {
		require := require.New(t)
		plugin := host.newIntegrate(t)
		err := plugin.Setup(coreutils.MapObject{fieldPoniFile: poni})
		require.ErrorIs(err, ErrConfigurationNotFound)
		require.Contains(err.Error(), fieldOutputDir)
	})

	t.Run("Should fail on blank output_dir", func(t *testing.T) {
		require := require.New(t)
		plugin := host.newIntegrate(t)
		err := plugin.Setup(coreutils.MapObject{fieldOutputDir: "  ", fieldPoniFile: poni})
		require.ErrorIs(err, ErrConfigurationNotFound)
	})

	t.Run("Should fail on missing PONI file", func(t *testing.T) {
		require := require.New(t)
		plugin := host.newIntegrate(t)
		err := plugin.Setup(coreutils.MapObject{
			fieldOutputDir: dir,
			fieldPoniFile:  filepath.Join(dir, "absent.poni"),
		})
		require.ErrorIs(err, ErrConfigurationNotFound)
	})

	t.Run("Should fail on malformed PONI content", func(t *testing.T) {
		require := require.New(t)
		bad := filepath.Join(dir, "bad.poni")
		require.NoError(os.WriteFile(bad, []byte("Distance: not-a-number\n"), 0644))
		plugin := host.newIntegrate(t)
		err := plugin.Setup(coreutils.MapObject{fieldOutputDir: dir, fieldPoniFile: bad})
		require.ErrorIs(err, iintegrator.ErrConstruction)
	})

	t.Run("Should fail on unknown unit", func(t *testing.T) {
		require := require.New(t)
		plugin := host.newIntegrate(t)
		err := plugin.Setup(coreutils.MapObject{
			fieldOutputDir: dir,
			fieldPoniFile:  poni,
			fieldUnit:      "q_A^-1",
		})
		require.ErrorIs(err, iintegrator.ErrUnknownUnit)
	})

	t.Run("Should fail on mistyped npt", func(t *testing.T) {
		require := require.New(t)
		plugin := host.newIntegrate(t)
		err := plugin.Setup(coreutils.MapObject{
			fieldOutputDir: dir,
			fieldPoniFile:  poni,
			fieldNpt:       "many",
		})
		require.ErrorIs(err, coreutils.ErrFieldTypeMismatch)
	})
}

func TestDefaults(t *testing.T) {
	require := require.New(t)

	host := newTestHost()
	dir := t.TempDir()
	plugin := host.newIntegrate(t)
	require.NoError(plugin.Setup(coreutils.MapObject{
		fieldOutputDir: dir,
		fieldPoniFile:  writeTestPONI(t, dir),
	}))
	require.Equal(iintegrator.DefaultNumPoints, plugin.npt)
	require.Equal(iintegrator.UnitQ, plugin.unit)
	require.Nil(plugin.monitors)
}

func TestAbort(t *testing.T) {
	require := require.New(t)

	host := newTestHost()
	dir := t.TempDir()
	poni := writeTestPONI(t, dir)
	files := []string{
		writeTestFrame(t, dir, "frame1.edf", 5),
		writeTestFrame(t, dir, "frame2.edf", 7),
		writeTestFrame(t, dir, "frame3.edf", 9),
	}

	plugin := host.newIntegrate(t)
	require.NoError(plugin.Setup(coreutils.MapObject{
		fieldOutputDir:  dir,
		fieldPoniFile:   poni,
		fieldInputFiles: files,
	}))

	// the abort lands while the first frame decodes, the batch must stop
	// at the next frame boundary
	inner := plugin.images
	plugin.images = testSource{open: func(path string) (iimages.Frame, error) {
		plugin.Abort()
		return inner.Open(path)
	}}
	require.NoError(plugin.Process(context.Background()))

	output, err := plugin.Teardown()
	require.NoError(err)
	require.Equal([]string{filepath.Join(dir, "frame1.dat")}, output[fieldOutputFiles])
}

func TestIntegrateSimple(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	poni := writeTestPONI(t, dir)
	image := writeTestFrame(t, dir, "single.edf", 5)
	curve := filepath.Join(dir, "single.dat")

	result, err := IntegrateSimple(iintegratorimpl.Provide(), iimagesimpl.Provide(), poni, image, curve, 500)
	require.NoError(err)
	require.Equal(coreutils.MapObject{"out_file": curve}, result)
	content, err := os.ReadFile(curve)
	require.NoError(err)
	require.NotEmpty(content)

	t.Run("Should run as a registered plugin", func(t *testing.T) {
		host := newTestHost()
		plugin, err := host.registry.New(PluginIntegrateSimple)
		require.NoError(err)
		out := filepath.Join(dir, "via_plugin.dat")
		require.NoError(plugin.Setup(coreutils.MapObject{
			fieldPoniFile: poni,
			"image_file":  image,
			"curve_file":  out,
			"nbins":       float64(250),
		}))
		require.NoError(plugin.Process(context.Background()))
		output, err := plugin.Teardown()
		require.NoError(err)
		require.Equal(coreutils.MapObject{"out_file": out}, output[iplugin.FieldResult])
		_, statErr := os.Stat(out)
		require.NoError(statErr)
	})

	t.Run("Should fail on a missing image", func(t *testing.T) {
		_, err := IntegrateSimple(iintegratorimpl.Provide(), iimagesimpl.Provide(),
			poni, filepath.Join(dir, "absent.edf"), curve, 100)
		require.Error(err)
	})
}

type testSource struct {
	open func(path string) (iimages.Frame, error)
}

func (s testSource) Open(path string) (iimages.Frame, error) { return s.open(path) }
