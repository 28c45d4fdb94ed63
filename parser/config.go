package parser

import "github.com/npillmayer/chevrogo/gast"

// Config configures a Parser instance.
type Config struct {
	// RecoveryEnabled turns on in-rule and in-repetition recovery. Between-
	// rules re-sync is governed separately, per rule, by RuleConfig.
	RecoveryEnabled bool
	// MaxLookahead bounds the lookahead the analysis pipeline precomputed
	// decision paths for. Must match (or be <=) the Config.MaxLookahead
	// the grammar was analyzed with.
	MaxLookahead int
	// IgnoredIssues is forwarded to the analysis pipeline.
	IgnoredIssues gast.IgnoredIssues
}

// DefaultConfig returns a Config with recovery off and a lookahead of 5.
func DefaultConfig() Config {
	return Config{MaxLookahead: 5}
}

// RuleConfig configures a single SubRule invocation.
type RuleConfig struct {
	// RecoveryValueFunc, if set, supplies the value a rule invocation
	// returns after between-rules re-sync swallowed a recognition error.
	RecoveryValueFunc func() interface{}
	// ResyncEnabled turns on between-rules re-sync for this invocation.
	// A SubRule call made with no enclosing rule on the call stack always
	// behaves as though this were true, regardless of what is passed in.
	// Parser.Parse takes no RuleConfig and performs no re-sync.
	ResyncEnabled bool
}

// DefaultRuleConfig returns a RuleConfig with re-sync enabled and no
// recovery value.
func DefaultRuleConfig() RuleConfig {
	return RuleConfig{ResyncEnabled: true}
}

func (c RuleConfig) recoveryValue() interface{} {
	if c.RecoveryValueFunc == nil {
		return nil
	}
	return c.RecoveryValueFunc()
}
