/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package objcache

// DefaultCacheSize is used by hosts that do not configure the capacity.
const DefaultCacheSize = 10
