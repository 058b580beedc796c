package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/turing/machines"
	"github.com/aretw0/turing/pkg/adapters/file"
	"github.com/aretw0/turing/pkg/definition"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/schema"
)

// ErrInvalidMachine is returned when validate finds problems.
var ErrInvalidMachine = errors.New("machine definition is invalid")

// Validate checks a definition file (or the bundled machine when path is
// empty) and lists every problem found.
func Validate(path string, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}

	var def *domain.Definition
	var err error
	if path == "" {
		path = machines.Fibonacci
		def, err = definition.FromLoader(file.NewLoader(machines.FS), path)
	} else {
		def, err = definition.Load(path)
	}

	if err != nil {
		problems := schema.ValidationErrors(err)
		if len(problems) == 0 {
			return err
		}
		fmt.Fprintf(out, "%s: %d problem(s)\n", path, len(problems))
		for _, p := range problems {
			fmt.Fprintf(out, "  - %v\n", p)
		}
		return fmt.Errorf("%w: %d problem(s)", ErrInvalidMachine, len(problems))
	}

	fmt.Fprintf(out, "%s is valid: %q, %d states, %d transitions, %d symbols ✅\n",
		path, def.Name, len(def.States), def.TransitionCount(), len(def.Alphabet))
	return nil
}
