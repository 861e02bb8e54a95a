// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv fills cfg from the process environment. Variables found in the
// dotEnvPath file are added when the process does not already define them;
// a missing file is ignored.
func parseEnv(cfg any, dotEnvPath string) error {
	environ := env.ToMap(os.Environ())

	if dotEnvPath != "" {
		fileVars, err := godotenv.Read(dotEnvPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return fmt.Errorf("error reading env file %s: %w", dotEnvPath, err)
		default:
			for k, v := range fileVars {
				if _, ok := environ[k]; !ok {
					environ[k] = v
				}
			}
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
