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
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Sort results are only reused within a session
	sortCacheExpiration = 30 * time.Minute
	sortCacheCleanup    = 5 * time.Minute
)

// NewSortCache creates a cache for sort results. A non-positive expiration
// falls back to sortCacheExpiration.
func NewSortCache(expiration time.Duration) *cache.Cache {
	if expiration <= 0 {
		expiration = sortCacheExpiration
	}
	return cache.New(expiration, sortCacheCleanup)
}

func sortCacheKey(algorithm string, input []int) string {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(algorithm))
	sb.WriteByte(':')
	for i, v := range input {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

func CacheSortResult(c *cache.Cache, algorithm string, input, result []int) {
	c.Set(sortCacheKey(algorithm, input), slices.Clone(result), cache.DefaultExpiration)
}

// GetSortResult returns a copy of the cached result so callers may mutate it.
func GetSortResult(c *cache.Cache, algorithm string, input []int) ([]int, bool) {
	val, ok := c.Get(sortCacheKey(algorithm, input))
	if !ok {
		return nil, false
	}
	return slices.Clone(val.([]int)), true
}
