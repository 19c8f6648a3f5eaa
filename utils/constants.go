// File: utils/constants.go
package utils

import "time"

// VendorCachePrefix is the prefix used for Redis vendor catalog cache keys.
const VendorCachePrefix = "catalog:vendors:"

// VendorCacheTTL is the time-to-live for vendor catalog cache entries.
const VendorCacheTTL = 10 * time.Minute
