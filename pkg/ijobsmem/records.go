/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package ijobsmem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/untillpro/goutils/logger"

	"github.com/drnecj/UPBL09a/pkg/coreutils"
)

// writeRecords persists the job input and output as <id>.in.json and
// <id>.out.json under the working directory. Record failures are logged,
// they never fail the job.
func (js *jobs) writeRecords(j *job) {
	if js.workdir == "" {
		return
	}
	if err := os.MkdirAll(js.workdir, coreutils.FileMode_rwxrwxrwx); err != nil {
		logger.Error("can not create workdir", js.workdir, ":", err)
		return
	}
	js.writeRecord(fmt.Sprintf("%d.in.json", j.id), j.Input())
	js.writeRecord(fmt.Sprintf("%d.out.json", j.id), j.Output())
}

func (js *jobs) writeRecord(name string, data coreutils.MapObject) {
	path := filepath.Join(js.workdir, name)
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		logger.Error("can not marshal record", path, ":", err)
		return
	}
	if err := os.WriteFile(path, bytes, coreutils.FileMode_rw_rw_rw_); err != nil {
		logger.Error("can not write record", path, ":", err)
	}
}
