package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"syscall"
)

// Environment of extensions, the global flags are passed through it.
const (
	EnvDataFile = "PTRACK_DATA"
	EnvCurrency = "PTRACK_CURRENCY"
	EnvEnv      = "PTRACK_ENV"
)

// RunExtension attempts to find and execute an external ptrack-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "ptrack-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = os.Environ()
	if cfg, err := settings(); err == nil {
		cmd.Env = append(cmd.Env,
			EnvDataFile+"="+cfg.DataFile,
			EnvCurrency+"="+cfg.Currency,
			EnvEnv+"="+cfg.Env,
		)
	}

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
