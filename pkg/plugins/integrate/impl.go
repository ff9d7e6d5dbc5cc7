/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package integrate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/drnecj/UPBL09a/pkg/coreutils"
	"github.com/drnecj/UPBL09a/pkg/iimages"
	"github.com/drnecj/UPBL09a/pkg/iintegrator"
	"github.com/drnecj/UPBL09a/pkg/imetrics"
	"github.com/drnecj/UPBL09a/pkg/iplugin"
	"github.com/drnecj/UPBL09a/pkg/objcache"
	"github.com/drnecj/UPBL09a/pkg/pipeline"
)

// integratePlugin reduces a batch of detector frames to 1D scattering curves.
//
// Typical job input:
//
//	{"plugin_name": "id31.integrate",
//	 "output_dir": "/tmp/curves",
//	 "poni_file": "/tmp/example.poni",
//	 "input_files": ["/tmp/file1.edf", "/tmp/file2.edf"],
//	 "monitor_values": [1, 1.1],
//	 "npt": 2000,
//	 "unit": "2th_deg"}
//
// Output: {"output_files": [...]} — one curve per processed frame, in
// processing order. A frame that cannot be processed is skipped with a
// warning, it never fails the batch.
type integratePlugin struct {
	iplugin.PluginBase

	cache   objcache.ICache[string, iintegrator.IIntegrator]
	factory iintegrator.IIntegratorFactory
	images  iimages.IImageSource

	ai          iintegrator.IIntegrator
	destDir     string
	npt         int
	unit        iintegrator.Unit
	inputFiles  []string
	monitors    []float64
	outputFiles []string

	/* metrics */
	mBuilt     *float64
	mCloned    *float64
	mProcessed *float64
	mSkipped   *float64
}

func (p *integratePlugin) Setup(input coreutils.MapObject) error {
	if err := p.PluginBase.Setup(input); err != nil {
		return err
	}

	destDir, ok, err := p.Input.AsString(fieldOutputDir)
	if err != nil {
		return p.LogError(err)
	}
	if !ok || coreutils.IsBlank(destDir) {
		return p.LogError(fmt.Errorf("%s not in input: %w", fieldOutputDir, ErrConfigurationNotFound))
	}
	if p.destDir, err = filepath.Abs(destDir); err != nil {
		return p.LogError(err)
	}

	poniFile, _, err := p.Input.AsString(fieldPoniFile)
	if err != nil {
		return p.LogError(err)
	}
	if p.ai, err = p.acquire(poniFile); err != nil {
		return p.LogError(err)
	}

	if npt, ok, err := p.Input.AsInt64(fieldNpt); err != nil {
		return p.LogError(err)
	} else if ok {
		p.npt = int(npt)
	}

	unitText, _, err := p.Input.AsString(fieldUnit)
	if err != nil {
		return p.LogError(err)
	}
	if p.unit, err = iintegrator.ParseUnit(unitText); err != nil {
		return p.LogError(err)
	}

	if p.inputFiles, _, err = p.Input.AsStrings(fieldInputFiles); err != nil {
		return p.LogError(err)
	}
	if p.monitors, _, err = p.Input.AsFloat64s(fieldMonitorValues); err != nil {
		return p.LogError(err)
	}
	return nil
}

// acquire returns an integrator the job may use exclusively until it ends.
//
// A candidate is always constructed first, even though the lookup may then
// hit, because the cache key is the canonical form of the constructed
// geometry. On a miss the candidate goes into the cache and the job uses it
// directly. On a hit the job gets a private clone of the cached instance,
// never the shared one: integration mutates integrator state, and two jobs
// running through one instance would corrupt each other.
func (p *integratePlugin) acquire(poniPath string) (iintegrator.IIntegrator, error) {
	candidate, err := p.factory.New(poniPath)
	if err != nil {
		return nil, err
	}
	imetrics.AddFloat64(p.mBuilt, 1.0)
	stored, inserted := p.cache.GetOrInsert(candidate.Key(), candidate)
	if inserted {
		return candidate, nil
	}
	imetrics.AddFloat64(p.mCloned, 1.0)
	return stored.CloneForExclusiveUse(), nil
}

func (p *integratePlugin) Process(ctx context.Context) error {
	monitors := p.monitors
	if monitors == nil {
		monitors = make([]float64, len(p.inputFiles))
		for i := range monitors {
			monitors[i] = 1
		}
	}
	count := len(p.inputFiles)
	if len(monitors) < count {
		count = len(monitors)
	}

	pipe := pipeline.NewSyncPipeline(ctx, "integrate frame",
		pipeline.WireFunc("statFile", p.statFile),
		pipeline.WireFunc("checkMonitor", p.checkMonitor),
		pipeline.WireFunc("decodeFrame", p.decodeFrame),
		pipeline.WireFunc("integrateFrame", p.integrateFrame),
	)
	defer pipe.Close()

	for i := 0; i < count; i++ {
		if p.Aborted() || ctx.Err() != nil {
			break
		}
		work := &frameWork{monitor: monitors[i], path: p.inputFiles[i]}
		if err := pipe.SendSync(work); err != nil {
			imetrics.AddFloat64(p.mSkipped, 1.0)
			p.LogWarning(fmt.Sprintf("skipping image %s: %s", work.path, err))
			continue
		}
		p.outputFiles = append(p.outputFiles, work.destination)
		imetrics.AddFloat64(p.mProcessed, 1.0)
	}
	return nil
}

func (p *integratePlugin) Teardown() (coreutils.MapObject, error) {
	p.Output[fieldOutputFiles] = p.outputFiles
	return p.PluginBase.Teardown()
}

// frameWork carries one (monitor, image path) pair through the per-frame
// pipeline.
type frameWork struct {
	monitor     float64
	path        string
	frame       iimages.Frame
	destination string
}

func (p *integratePlugin) statFile(_ context.Context, work interface{}) error {
	w := work.(*frameWork)
	if _, err := os.Stat(w.path); err != nil {
		return fmt.Errorf("image file %s does not exist", w.path)
	}
	return nil
}

func (p *integratePlugin) checkMonitor(_ context.Context, work interface{}) error {
	w := work.(*frameWork)
	if w.monitor <= 0 {
		return fmt.Errorf("monitor value is %v", w.monitor)
	}
	return nil
}

func (p *integratePlugin) decodeFrame(_ context.Context, work interface{}) error {
	w := work.(*frameWork)
	frame, err := p.images.Open(w.path)
	if err != nil {
		return err
	}
	w.frame = frame
	return nil
}

func (p *integratePlugin) integrateFrame(_ context.Context, work interface{}) error {
	w := work.(*frameWork)
	basename := filepath.Base(w.path)
	basename = strings.TrimSuffix(basename, filepath.Ext(basename))
	w.destination = filepath.Join(p.destDir, basename+".dat")
	_, err := p.ai.Integrate1D(w.frame, iintegrator.IntegrateParams{
		NumPoints:     p.npt,
		Unit:          p.unit,
		Normalization: w.monitor,
		Filename:      w.destination,
	})
	return err
}
