package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/PerikiyoXD/rxserver/internal/server"
)

// fileConfig is the optional on-disk shape this binary decodes with
// BurntSushi/toml, grounded on noisetorch's config.go: a flat struct passed
// straight to toml.DecodeFile, no custom unmarshalers. CLI flags set after
// loading the file always win, matching noisetorch's "file supplies
// defaults, flags override" order.
type fileConfig struct {
	Display       int
	UnixSocketDir string
	Vendor        string
	Release       uint32
	CookieFile    string
	Screens       []screenConfig
}

type screenConfig struct {
	WidthPixels         uint16
	HeightPixels        uint16
	WidthMillimeters    uint16
	HeightMillimeters   uint16
	RootVisual          uint32
	BlackPixel          uint32
	WhitePixel          uint32
}

// defaultScreen is used when neither the config file nor flags name one,
// matching the single 1024x768 screen the teacher's wasm
// frontend always assumes.
var defaultScreen = screenConfig{
	WidthPixels:       1024,
	HeightPixels:      768,
	WidthMillimeters:  270,
	HeightMillimeters: 203,
	RootVisual:        0x21,
	BlackPixel:        0x000000,
	WhitePixel:        0xFFFFFF,
}

func loadFileConfig(path string) (*fileConfig, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, fmt.Errorf("rxserver: decode config %s: %w", path, err)
	}
	return &fc, nil
}

// readCookie loads a MIT-MAGIC-COOKIE-1 value from path; an empty path
// disables authentication (server.Config.Cookie == nil), matching the
// teacher's always-trusted-local-client behavior.
func readCookie(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rxserver: read cookie %s: %w", path, err)
	}
	return b, nil
}

// buildConfig merges an optional fileConfig with CLI-flag overrides into a
// server.Config ready for server.New. Flags passed on the command line take
// priority over the file; zero/empty flag values fall back to the file,
// then to hardcoded defaults.
func buildConfig(fc *fileConfig, display int, unixDir, vendor, cookiePath string, release uint) (server.Config, error) {
	cfg := server.Config{
		Display:       display,
		UnixSocketDir: unixDir,
		Vendor:        vendor,
		Release:       uint32(release),
	}
	if fc != nil {
		if display == 0 && fc.Display != 0 {
			cfg.Display = fc.Display
		}
		if unixDir == "" {
			cfg.UnixSocketDir = fc.UnixSocketDir
		}
		if vendor == "" {
			cfg.Vendor = fc.Vendor
		}
		if release == 0 {
			cfg.Release = fc.Release
		}
		if cookiePath == "" {
			cookiePath = fc.CookieFile
		}
		for _, sc := range fc.Screens {
			cfg.Screens = append(cfg.Screens, server.ScreenConfig{
				WidthPixels:         sc.WidthPixels,
				HeightPixels:        sc.HeightPixels,
				WidthMillimeters:    sc.WidthMillimeters,
				HeightMillimeters:   sc.HeightMillimeters,
				RootVisual:          sc.RootVisual,
				BlackPixel:          sc.BlackPixel,
				WhitePixel:          sc.WhitePixel,
			})
		}
	}
	if len(cfg.Screens) == 0 {
		cfg.Screens = []server.ScreenConfig{{
			WidthPixels:         defaultScreen.WidthPixels,
			HeightPixels:        defaultScreen.HeightPixels,
			WidthMillimeters:    defaultScreen.WidthMillimeters,
			HeightMillimeters:   defaultScreen.HeightMillimeters,
			RootVisual:          defaultScreen.RootVisual,
			BlackPixel:          defaultScreen.BlackPixel,
			WhitePixel:          defaultScreen.WhitePixel,
		}}
	}

	cookie, err := readCookie(cookiePath)
	if err != nil {
		return server.Config{}, err
	}
	cfg.Cookie = cookie
	return cfg, nil
}
