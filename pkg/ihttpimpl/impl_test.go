/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package ihttpimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/drnecj/UPBL09a/pkg/coreutils"
	"github.com/drnecj/UPBL09a/pkg/ihttp"
	"github.com/drnecj/UPBL09a/pkg/ijobs"
	"github.com/drnecj/UPBL09a/pkg/ijobsmem"
	"github.com/drnecj/UPBL09a/pkg/imetrics"
	"github.com/drnecj/UPBL09a/pkg/iplugin"
	"github.com/drnecj/UPBL09a/pkg/iprocbusmem"
	"github.com/drnecj/UPBL09a/pkg/plugins/example"
)

func TestBasicUsage_HTTPProcessor(t *testing.T) {
	require := require.New(t)
	testApp := setUp(t)
	defer tearDown(testApp)

	t.Run("submit a job and read its output", func(t *testing.T) {
		submitted := map[string]interface{}{}
		require.NoError(json.Unmarshal(testApp.post("/api/v1/jobs", `{"plugin_name":"example.square","x":5}`), &submitted))
		require.Equal(1.0, submitted["id"])

		output := testApp.waitOutput(1)
		require.Equal(25.0, output[iplugin.FieldResult])
	})

	t.Run("job record", func(t *testing.T) {
		record := map[string]interface{}{}
		require.NoError(json.Unmarshal(testApp.get("/api/v1/jobs/1"), &record))
		require.Equal(string(ijobs.StateSuccess), record["state"])
		require.Equal(example.PluginSquare, record["name"])
		input := record["input"].(map[string]interface{})
		require.Equal(example.PluginSquare, input[iplugin.FieldPluginName])
		require.Equal(1.0, input[iplugin.FieldJobID])
		output := record["output"].(map[string]interface{})
		require.Equal(25.0, output[iplugin.FieldResult])
	})

	t.Run("jobs list", func(t *testing.T) {
		ids := []int64{}
		require.NoError(json.Unmarshal(testApp.get("/api/v1/jobs"), &ids))
		require.Equal([]int64{1}, ids)
	})

	t.Run("plugins list", func(t *testing.T) {
		names := []string{}
		require.NoError(json.Unmarshal(testApp.get("/api/v1/plugins"), &names))
		require.Contains(names, example.PluginSquare)
		require.Contains(names, example.PluginCube)
	})

	t.Run("stats readout", func(t *testing.T) {
		stats := string(testApp.get("/api/v1/stats"))
		require.Contains(stats, example.PluginSquare)
		require.Contains(stats, "Total execution time (Wall):")
	})

	t.Run("prometheus metrics", func(t *testing.T) {
		metrics := string(testApp.get("/metrics"))
		require.Contains(metrics, `dahu_jobs_succeeded_total{host="test"} 1`)
	})
}

func TestSubmitReplies400(t *testing.T) {
	testApp := setUp(t)
	defer tearDown(testApp)

	t.Run("Should reject malformed input", func(t *testing.T) {
		require := require.New(t)
		body := testApp.post("/api/v1/jobs", `{"plugin_name":`, http.StatusBadRequest)
		require.Contains(string(body), "can not parse job input")
	})
	t.Run("Should reject unknown plugin", func(t *testing.T) {
		require := require.New(t)
		body := testApp.post("/api/v1/jobs", `{"plugin_name":"no.such"}`, http.StatusBadRequest)
		require.Contains(string(body), "plugin not found")
	})
	t.Run("Should reject input without plugin name", func(t *testing.T) {
		require := require.New(t)
		body := testApp.post("/api/v1/jobs", `{"x":5}`, http.StatusBadRequest)
		require.Contains(string(body), "plugin_name")
	})
}

func TestSubmitReplies503(t *testing.T) {
	require := require.New(t)
	testApp := setUpSaturated(t)
	defer tearDown(testApp)

	url := fmt.Sprintf("http://localhost:%d/api/v1/jobs", testApp.listeningPort)
	res, err := http.Post(url, coreutils.ContentType_ApplicationJSON, strings.NewReader(`{"plugin_name":"example.square","x":1}`))
	require.NoError(err)
	defer res.Body.Close()
	require.Equal(http.StatusServiceUnavailable, res.StatusCode)
	require.Equal("1", res.Header.Get("Retry-After"))
}

func TestUnknownJobReplies404(t *testing.T) {
	testApp := setUp(t)
	defer tearDown(testApp)

	testApp.get("/api/v1/jobs/99", http.StatusNotFound)
	testApp.get("/api/v1/jobs/99/output", http.StatusNotFound)
	testApp.post("/api/v1/jobs/99/abort", "", http.StatusNotFound)

	// non-numeric ids do not match the route
	testApp.get("/api/v1/jobs/abc", http.StatusNotFound)
}

func TestAbortOverHTTP(t *testing.T) {
	require := require.New(t)
	testApp := setUp(t)
	defer tearDown(testApp)

	started := make(chan struct{})
	testApp.registry.Register("test.block", func() iplugin.IPlugin {
		return &blockingPlugin{PluginBase: iplugin.NewBase("test.block"), started: started}
	})

	submitted := map[string]interface{}{}
	require.NoError(json.Unmarshal(testApp.post("/api/v1/jobs", `{"plugin_name":"test.block"}`), &submitted))
	id := int64(submitted["id"].(float64))

	select {
	case <-started:
	case <-time.After(10 * time.Second):
		t.Fatal("job did not start in time")
	}

	aborted := map[string]interface{}{}
	require.NoError(json.Unmarshal(testApp.post(fmt.Sprintf("/api/v1/jobs/%d/abort", id), ""), &aborted))
	require.Equal(string(ijobs.StateAborted), aborted["state"])

	output := testApp.waitOutput(id)
	require.NotEmpty(output["aborted"])
}

type testApp struct {
	ctx           context.Context
	cancel        context.CancelFunc
	wg            *sync.WaitGroup
	engine        ijobs.IJobs
	registry      iplugin.IPluginRegistry
	processor     ihttp.IHTTPProcessor
	cleanups      []func()
	listeningPort int
	t             *testing.T
}

func setUp(t *testing.T) *testApp { return newTestApp(t, true, 10) }

// setUpSaturated runs no workers over an unbuffered bus, every submission
// replies busy
func setUpSaturated(t *testing.T) *testApp { return newTestApp(t, false, 0) }

func newTestApp(t *testing.T, startWorkers bool, buffer uint) *testApp {
	require := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())

	registry := iplugin.Provide()
	example.Provide(registry)
	bus := iprocbusmem.Provide([]iprocbusmem.ChannelGroup{{NumChannels: 1, ChannelBufferSize: buffer}})
	metrics := imetrics.Provide()
	engine, workers := ijobsmem.Provide(ijobsmem.Params{NumWorkers: 1}, registry, bus, metrics, "test", nil)

	processor, pCleanup := Provide(ihttp.CLIParams{Port: 0}, engine, registry, metrics)
	cleanups := []func(){pCleanup}

	require.NoError(processor.Prepare())

	wg := &sync.WaitGroup{}
	if startWorkers {
		require.NoError(workers.Prepare())
		wg.Add(1)
		go func() {
			defer wg.Done()
			workers.Run(ctx)
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		processor.Run(ctx)
	}()

	return &testApp{
		ctx:           ctx,
		cancel:        cancel,
		wg:            wg,
		engine:        engine,
		registry:      registry,
		processor:     processor,
		cleanups:      cleanups,
		listeningPort: processor.ListeningPort(),
		t:             t,
	}
}

func tearDown(ta *testApp) {
	ta.cancel()
	ta.wg.Wait()
	for _, cleanup := range ta.cleanups {
		cleanup()
	}
}

func (ta *testApp) get(resource string, expectedCodes ...int) []byte {
	require := require.New(ta.t)
	ta.t.Helper()

	res, err := http.Get(fmt.Sprintf("http://localhost:%d%s", ta.listeningPort, resource))
	require.NoError(err)
	defer res.Body.Close()
	expectedCode := http.StatusOK
	if len(expectedCodes) > 0 {
		expectedCode = expectedCodes[0]
	}
	require.Equal(expectedCode, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(err)
	return body
}

func (ta *testApp) post(resource string, body string, expectedCodes ...int) []byte {
	require := require.New(ta.t)
	ta.t.Helper()

	url := fmt.Sprintf("http://localhost:%d%s", ta.listeningPort, resource)
	res, err := http.Post(url, coreutils.ContentType_ApplicationJSON, strings.NewReader(body))
	require.NoError(err)
	defer res.Body.Close()
	expectedCode := http.StatusOK
	if len(expectedCodes) > 0 {
		expectedCode = expectedCodes[0]
	}
	require.Equal(expectedCode, res.StatusCode)

	replyBody, err := io.ReadAll(res.Body)
	require.NoError(err)
	return replyBody
}

// waitOutput polls the output resource until the job completes
func (ta *testApp) waitOutput(id int64) coreutils.MapObject {
	require := require.New(ta.t)
	ta.t.Helper()

	url := fmt.Sprintf("http://localhost:%d/api/v1/jobs/%d/output", ta.listeningPort, id)
	deadline := time.Now().Add(10 * time.Second)
	for {
		res, err := http.Get(url)
		require.NoError(err)
		body, err := io.ReadAll(res.Body)
		require.NoError(err)
		res.Body.Close()

		if res.StatusCode == http.StatusOK {
			output := coreutils.MapObject{}
			require.NoError(json.Unmarshal(body, &output))
			return output
		}
		require.Equal(http.StatusAccepted, res.StatusCode)
		require.True(time.Now().Before(deadline), "job %d did not complete in time", id)
		time.Sleep(10 * time.Millisecond)
	}
}

type blockingPlugin struct {
	iplugin.PluginBase
	started chan struct{}
}

func (p *blockingPlugin) Process(ctx context.Context) error {
	close(p.started)
	<-ctx.Done()
	return nil
}
