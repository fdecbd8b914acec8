// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Path is a filesystem path from Captain.toml. A leading ~ is expanded to the
// user's home directory when the config is decoded.
type Path string

var _ interface {
	UnmarshalText([]byte) error
} = (*Path)(nil)

func (p *Path) UnmarshalText(text []byte) error {
	expanded, err := expandTilde(string(text))
	if err != nil {
		return err
	}
	*p = Path(expanded)
	return nil
}

func (p Path) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

func (p Path) String() string {
	return string(p)
}

// Join appends elements to the path.
func (p Path) Join(elem ...string) string {
	return filepath.Join(append([]string{string(p)}, elem...)...)
}

// Exists reports whether the path is present on disk.
func (p Path) Exists() bool {
	_, err := os.Stat(string(p))
	return err == nil
}

func expandTilde(s string) (string, error) {
	if s != "~" && !strings.HasPrefix(s, "~/") {
		return s, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand %q: %w", s, err)
	}
	if s == "~" {
		return home, nil
	}
	return filepath.Join(home, s[2:]), nil
}
