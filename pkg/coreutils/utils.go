/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package coreutils

import (
	"fmt"
	"os"
	"strings"
)

func IsBlank(str string) bool {
	return len(strings.TrimSpace(str)) == 0
}

func IsTest() bool {
	return strings.Contains(os.Args[0], ".test") || IsDebug()
}

func IsDebug() bool {
	return strings.Contains(os.Args[0], "__debug_bin")
}

// ServerAddress binds to the loopback interface under tests to avoid
// firewall prompts on dev machines.
func ServerAddress(port int) string {
	addr := ""
	if IsTest() {
		addr = "127.0.0.1"
	}
	return fmt.Sprintf("%s:%d", addr, port)
}
