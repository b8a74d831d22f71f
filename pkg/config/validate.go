package config

import (
	"math"

	"github.com/charmbracelet/log"
)

// MaxResultLimit bounds server.max_limit so result ranks fit a uint16.
const MaxResultLimit = math.MaxUint16

// sanitize resets out of range values to their defaults.
func (c *Config) sanitize() {
	def := DefaultConfig()

	s := &c.Server
	if s.MaxLimit < 1 || s.MaxLimit > MaxResultLimit {
		log.Warnf("server.max_limit %d out of range [1, %d], using %d", s.MaxLimit, MaxResultLimit, def.Server.MaxLimit)
		s.MaxLimit = def.Server.MaxLimit
	}
	if s.MinPrefix < 1 || s.MaxPrefix < s.MinPrefix {
		log.Warnf("server prefix bounds [%d, %d] invalid, using [%d, %d]", s.MinPrefix, s.MaxPrefix, def.Server.MinPrefix, def.Server.MaxPrefix)
		s.MinPrefix, s.MaxPrefix = def.Server.MinPrefix, def.Server.MaxPrefix
	}
	if s.DefaultK < 0 {
		log.Warnf("server.default_k %d is negative, using %d", s.DefaultK, def.Server.DefaultK)
		s.DefaultK = def.Server.DefaultK
	}

	d := &c.Dict
	if d.WordList == "" {
		d.WordList = def.Dict.WordList
	}
	if d.Backend != BackendRWay && d.Backend != BackendPatricia {
		log.Warnf("dict.backend %q unknown, using %s", d.Backend, def.Dict.Backend)
		d.Backend = def.Dict.Backend
	}

	cli := &c.CLI
	if cli.DefaultLimit < 1 {
		log.Warnf("cli.default_limit %d must be positive, using %d", cli.DefaultLimit, def.CLI.DefaultLimit)
		cli.DefaultLimit = def.CLI.DefaultLimit
	}
	if cli.DefaultK < 0 {
		log.Warnf("cli.default_k %d is negative, using %d", cli.DefaultK, def.CLI.DefaultK)
		cli.DefaultK = def.CLI.DefaultK
	}
	if cli.DefaultMinLen < 1 || cli.DefaultMaxLen < cli.DefaultMinLen {
		log.Warnf("cli prefix bounds [%d, %d] invalid, using [%d, %d]", cli.DefaultMinLen, cli.DefaultMaxLen, def.CLI.DefaultMinLen, def.CLI.DefaultMaxLen)
		cli.DefaultMinLen, cli.DefaultMaxLen = def.CLI.DefaultMinLen, def.CLI.DefaultMaxLen
	}
}

// Limit returns how many results to send for a requested count. Requests
// below 1 or above the maximum get the maximum, and an invalid maximum falls
// back to the default.
func (s ServerConfig) Limit(requested int) int {
	limit := s.MaxLimit
	if limit < 1 || limit > MaxResultLimit {
		limit = DefaultConfig().Server.MaxLimit
	}
	if requested >= 1 && requested < limit {
		return requested
	}
	return limit
}
