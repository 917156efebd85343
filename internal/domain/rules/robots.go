package rules

import (
	"fmt"
	"strings"

	"github.com/seokraft/seokraft/internal/domain"
)

func checkRobots(clean *domain.Record) fragment {
	var f fragment
	directive := clean.RobotsDirective
	if directive == "" {
		return f
	}

	if !domain.IsValidRobotsDirective(directive) {
		f.major("robots_directive",
			fmt.Sprintf("Unknown robots directive %q (allowed: %s)",
				directive, strings.Join(domain.ValidRobotsDirectives, ", ")),
			"Use one of the allowed directive values")
	}

	return f
}
