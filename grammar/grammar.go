// Package grammar carries the EBNF the tokenizer and parser implement.
// The grammar text is the one external contract of the front end and is
// versioned independently of the module.
package grammar

import (
	_ "embed"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

//go:embed grammar.ebnf
var EBNF string

// Version of the embedded grammar.
var Version = semver.MustParse("2.0.0")

// Check reports whether the embedded grammar satisfies the given version
// constraint, e.g. ‘>= 2, < 3’.
func Check(constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("bad grammar constraint ‘%s’: %w", constraint, err)
	}
	if !c.Check(Version) {
		return fmt.Errorf("grammar version %s does not satisfy ‘%s’",
			Version, constraint)
	}
	return nil
}
