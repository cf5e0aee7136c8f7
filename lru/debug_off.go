//go:build !lrudebug

package lru

const debugAssertions = false
