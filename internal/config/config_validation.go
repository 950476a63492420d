// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig]. Only values that can never
// be right regardless of the source are rejected here; completeness is
// checked on the client view.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}
	if cfg.Download.AutoDelay != nil && *cfg.Download.AutoDelay < 0 {
		return fmt.Errorf("%w: negative auto download delay", ErrInvalidDownloadConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidAdapterConfigs)
	}
	if !strings.HasPrefix(cfg.Adapter.ProcessPath, "/") || !strings.HasPrefix(cfg.Adapter.DownloadPath, "/") {
		return fmt.Errorf("%w: endpoint paths must start with /", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if strings.TrimSpace(cfg.Download.Dir) == "" {
		return fmt.Errorf("%w: empty download dir", ErrInvalidDownloadConfigs)
	}
	if cfg.Download.AutoDelay < 0 {
		return fmt.Errorf("%w: negative auto download delay", ErrInvalidDownloadConfigs)
	}

	return nil
}
