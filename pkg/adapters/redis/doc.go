// Package redis provides Redis-backed worlds, containers and world locks.
package redis
