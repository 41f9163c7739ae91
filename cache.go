// cache.go

/**
 * Copyright 2025 (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Clean up expired frames every 5 minutes
	frameCacheCleanup = 5 * time.Minute
)

// NewRenderCache creates a cache for rendered tree frames. Frames are keyed
// by tree version, so stale entries are never read again and only need to
// expire.
func NewRenderCache(expiration time.Duration) *cache.Cache {
	return cache.New(expiration, frameCacheCleanup)
}

func CacheFrame(c *cache.Cache, key string, frame string) {
	// Use Set instead of Add to allow overwriting
	c.Set(key, frame, cache.DefaultExpiration)
}

func GetFrame(c *cache.Cache, key string) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false
	}
	frame, ok := val.(string)
	return frame, ok
}
