/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package ihttpimpl

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/untillpro/goutils/logger"

	"github.com/drnecj/UPBL09a/pkg/coreutils"
	"github.com/drnecj/UPBL09a/pkg/ijobs"
	"github.com/drnecj/UPBL09a/pkg/imetrics"
)

func (p *httpProcessor) registerHandlers() {
	p.router.HandleFunc(apiPrefix+"/jobs", p.handleSubmit()).Methods(http.MethodPost).Name("submit job")
	p.router.HandleFunc(apiPrefix+"/jobs", p.handleJobs()).Methods(http.MethodGet).Name("list jobs")
	p.router.HandleFunc(apiPrefix+"/jobs/{id:[0-9]+}", p.handleJob()).Methods(http.MethodGet).Name("job record")
	p.router.HandleFunc(apiPrefix+"/jobs/{id:[0-9]+}/output", p.handleOutput()).Methods(http.MethodGet).Name("job output")
	p.router.HandleFunc(apiPrefix+"/jobs/{id:[0-9]+}/abort", p.handleAbort()).Methods(http.MethodPost).Name("abort job")
	p.router.HandleFunc(apiPrefix+"/plugins", p.handlePlugins()).Methods(http.MethodGet).Name("list plugins")
	p.router.HandleFunc(apiPrefix+"/stats", p.handleStats()).Methods(http.MethodGet).Name("stats")
	p.router.HandleFunc("/metrics", p.handleMetrics()).Methods(http.MethodGet).Name("metrics")
}

func (p *httpProcessor) handleSubmit() http.HandlerFunc {
	return func(wr http.ResponseWriter, req *http.Request) {
		input := coreutils.MapObject{}
		if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
			replyCommonError(wr, "can not parse job input: "+err.Error(), http.StatusBadRequest)
			return
		}
		id, err := p.engine.Submit(input)
		switch {
		case errors.Is(err, ijobs.ErrBusy):
			wr.Header().Set("Retry-After", strconv.Itoa(retryAfterSecondsOn503))
			replyCommonError(wr, err.Error(), http.StatusServiceUnavailable)
		case err != nil:
			replyCommonError(wr, err.Error(), http.StatusBadRequest)
		default:
			replyJSON(wr, map[string]interface{}{"id": id}, http.StatusOK)
		}
	}
}

func (p *httpProcessor) handleJobs() http.HandlerFunc {
	return func(wr http.ResponseWriter, req *http.Request) {
		replyJSON(wr, p.engine.Jobs(), http.StatusOK)
	}
}

func (p *httpProcessor) handleJob() http.HandlerFunc {
	return func(wr http.ResponseWriter, req *http.Request) {
		job, err := p.engine.Job(jobID(req))
		if err != nil {
			replyCommonError(wr, err.Error(), http.StatusNotFound)
			return
		}
		replyJSON(wr, map[string]interface{}{
			"id":      job.ID(),
			"name":    job.Name(),
			"state":   job.State(),
			"runtime": job.Runtime().Seconds(),
			"input":   job.Input(),
			"output":  job.Output(),
		}, http.StatusOK)
	}
}

func (p *httpProcessor) handleOutput() http.HandlerFunc {
	return func(wr http.ResponseWriter, req *http.Request) {
		job, err := p.engine.Job(jobID(req))
		if err != nil {
			replyCommonError(wr, err.Error(), http.StatusNotFound)
			return
		}
		switch job.State() {
		case ijobs.StateUninitialized, ijobs.StateRunning:
			replyJSON(wr, map[string]interface{}{"state": job.State()}, http.StatusAccepted)
		default:
			replyJSON(wr, job.Output(), http.StatusOK)
		}
	}
}

func (p *httpProcessor) handleAbort() http.HandlerFunc {
	return func(wr http.ResponseWriter, req *http.Request) {
		id := jobID(req)
		if err := p.engine.Abort(id); err != nil {
			replyCommonError(wr, err.Error(), http.StatusNotFound)
			return
		}
		job, err := p.engine.Job(id)
		if err != nil {
			// notest: Abort just found it
			replyCommonError(wr, err.Error(), http.StatusNotFound)
			return
		}
		replyJSON(wr, map[string]interface{}{"id": id, "state": job.State()}, http.StatusOK)
	}
}

func (p *httpProcessor) handlePlugins() http.HandlerFunc {
	return func(wr http.ResponseWriter, req *http.Request) {
		replyJSON(wr, p.registry.Names(), http.StatusOK)
	}
}

func (p *httpProcessor) handleStats() http.HandlerFunc {
	return func(wr http.ResponseWriter, req *http.Request) {
		wr.Header().Set(coreutils.ContentType, coreutils.ContentType_TextPlain)
		writeResponse(wr, p.engine.Stats())
	}
}

func (p *httpProcessor) handleMetrics() http.HandlerFunc {
	return func(wr http.ResponseWriter, req *http.Request) {
		wr.Header().Set(coreutils.ContentType, coreutils.ContentType_TextPlain)
		err := p.metrics.List(func(metric imetrics.IMetric, metricValue float64) (err error) {
			_, err = wr.Write(imetrics.ToPrometheus(metric, metricValue))
			return
		})
		if err != nil {
			logger.Error("failed to write metrics:", err)
			wr.WriteHeader(http.StatusInternalServerError)
		}
	}
}

func jobID(req *http.Request) int64 {
	id, err := strconv.ParseInt(mux.Vars(req)["id"], 10, 64)
	if err != nil {
		// notest: parsed already by route regexp
		panic(err)
	}
	return id
}

func replyCommonError(wr http.ResponseWriter, msg string, code int) {
	wr.Header().Set(coreutils.ContentType, coreutils.ContentType_ApplicationJSON)
	wr.WriteHeader(code)
	writeResponse(wr, `{"status":`+strconv.Itoa(code)+`,"message":`+strconv.Quote(msg)+`}`)
}

func replyJSON(wr http.ResponseWriter, data interface{}, code int) {
	bytes, err := json.Marshal(data)
	if err != nil {
		replyCommonError(wr, err.Error(), http.StatusInternalServerError)
		return
	}
	wr.Header().Set(coreutils.ContentType, coreutils.ContentType_ApplicationJSON)
	wr.WriteHeader(code)
	writeResponse(wr, string(bytes))
}

func writeResponse(wr http.ResponseWriter, data string) {
	if _, err := wr.Write([]byte(data)); err != nil {
		logger.Error("failed to write response:", err)
	}
}
