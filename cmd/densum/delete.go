package main

import (
	"fmt"

	"github.com/fwojciec/densum"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return densum.Errorf(densum.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Extractions.DeleteExtraction(deps.Ctx, c.ID); err != nil {
		if densum.ErrorCode(err) == densum.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: extraction %q not found. Use 'densum list' to see stored extractions.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", densum.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted extraction %s\n", c.ID)
	return nil
}
