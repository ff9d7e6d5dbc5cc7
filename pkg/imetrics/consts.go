/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package imetrics

const bitSize = 64
