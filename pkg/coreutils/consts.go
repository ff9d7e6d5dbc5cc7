/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package coreutils

import "io/fs"

const (
	ContentType                             = "Content-Type"
	ContentType_ApplicationJSON             = "application/json"
	ContentType_TextPlain                   = "text/plain"
	FileMode_rwxrwxrwx          fs.FileMode = 0777 // default for directory
	FileMode_rw_rw_rw_          fs.FileMode = 0666 // default for file
)
