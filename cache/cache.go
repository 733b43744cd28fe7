// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package cache implements a typed in-memory cache with expiring entries
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache stores values of a single type. Errors are never cached.
type Cache[T any] struct {
	store  *gocache.Cache
	expire time.Duration
}

// New creates a cache whose entries expire after expire and are purged every purge
func New[T any](expire, purge time.Duration) *Cache[T] {
	return &Cache[T]{
		store:  gocache.New(expire, purge),
		expire: expire,
	}
}

// Get returns the value for 'key'.
//
// cache hit:
//
//	pull the value from the cache and return it.
//
// cache miss:
//
//	call 'cb' to get a new value. If the callback doesn't return an error the
//	value is cached with the default expiration and returned.
func (c *Cache[T]) Get(key string, cb func() (T, error)) (T, error) {
	return c.GetWithExpiration(key, cb, c.expire)
}

// GetWithExpiration is Get with an explicit expiration for a missed key
func (c *Cache[T]) GetWithExpiration(key string, cb func() (T, error), expire time.Duration) (T, error) {
	if x, found := c.store.Get(key); found {
		if v, ok := x.(T); ok {
			return v, nil
		}
	}

	res, err := cb()
	if err == nil {
		c.store.Set(key, res, expire)
	}
	return res, err
}

// Flush drops every entry
func (c *Cache[T]) Flush() {
	c.store.Flush()
}
