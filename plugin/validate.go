package plugin

import (
	"errors"
	"fmt"
)

// Kind tags a plugin configured next to this one in the same generation target.
type Kind string

const (
	KindTypeScript           Kind = "typescript"
	KindTypeScriptOperations Kind = "typescript-operations"
	KindApolloClientWrappers Kind = Name
)

type Entry struct {
	Kind Kind
}

var ErrMissingClientImport = errors.New(`you must specify "apolloClientImport" in your plugin configuration`)

// MissingCompanionPluginError reports a required companion plugin absent from the target.
type MissingCompanionPluginError struct {
	Plugin Kind
}

func (e *MissingCompanionPluginError) Error() string {
	return fmt.Sprintf("you must specify the %q plugin in your configuration", string(e.Plugin))
}

var requiredCompanions = []Kind{KindTypeScript, KindTypeScriptOperations}

// Validate checks cfg and the plugins configured for the same target.
// It returns the first unmet requirement.
func Validate(cfg *Config, plugins []*Entry) error {
	if cfg == nil || cfg.ApolloClientImport == "" {
		return ErrMissingClientImport
	}

	for _, kind := range requiredCompanions {
		if !hasKind(plugins, kind) {
			return &MissingCompanionPluginError{Plugin: kind}
		}
	}

	return nil
}

func hasKind(plugins []*Entry, kind Kind) bool {
	for _, p := range plugins {
		if p != nil && p.Kind == kind {
			return true
		}
	}
	return false
}
