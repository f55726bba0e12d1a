//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Builds and runs the testbed demo once.
func (Run) Demo() error {
	mg.Deps(Build.Binary)
	fmt.Println("Run demo...")
	if _, err := executeCmd("bin/prism", withArgs("-config", "prism.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the demo until interrupted, reloading prism.toml on change.
func (Run) Watch() error {
	mg.Deps(Build.Binary)
	if _, err := executeCmd("bin/prism", withArgs("-config", "prism.toml", "-watch"), withStream()); err != nil {
		return err
	}
	return nil
}
