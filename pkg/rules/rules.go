// Package rules assembles the built-in lint rules.
package rules

import (
	"github.com/Sumatoshi-tech/testlint/pkg/lint"
	"github.com/Sumatoshi-tech/testlint/pkg/rules/clearbeforetype"
	"github.com/Sumatoshi-tech/testlint/pkg/rules/hookpair"
	"github.com/Sumatoshi-tech/testlint/pkg/rules/pagesingleton"
)

// Default returns every built-in rule with default options, in stable
// registration order.
func Default() []lint.Rule {
	return []lint.Rule{
		pagesingleton.New(),
		hookpair.New(),
		clearbeforetype.New(),
	}
}
